package inbound

import (
	"net/http"

	"github.com/shandysiswandi/academia/internal/pkg/router"
)

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/notifications", end.List, r.Authorize("notifications", "read"))
	r.POST("/api/v1/notifications", end.Create, r.Authorize("notifications", "create"))
	r.PATCH("/api/v1/notifications/:id/read", end.MarkRead, r.Authorize("notifications", "update"))
	r.DELETE("/api/v1/notifications/:id", end.Delete, r.Authorize("notifications", "delete"))
	r.PUT("/api/v1/notifications-read-all", end.MarkAllRead, r.Authorize("notifications", "update"))
	r.GET("/api/v1/notifications-unread-count", end.UnreadCount, r.Authorize("notifications", "read"))

	r.GETRaw("/api/v1/notifications-stream", http.HandlerFunc(end.Stream), r.Authorize("notifications", "read"))
}
