package inbound

import (
	"net/http"
	"strconv"
	"time"

	"github.com/shandysiswandi/academia/internal/notification/entity"
	"github.com/shandysiswandi/academia/internal/pkg/valueobject"
)

type pageMeta struct {
	total int64
	size  int32
	page  int32
}

func (m pageMeta) Meta() map[string]any {
	return map[string]any{
		"total": m.total,
		"size":  m.size,
		"page":  m.page,
	}
}

type NotificationResponse struct {
	ID          string              `json:"id"`
	RecipientID string              `json:"recipient_id"`
	Title       string              `json:"title"`
	Message     string              `json:"message"`
	Type        string              `json:"type"`
	Data        valueobject.JSONMap `json:"data" swaggertype:"object"`
	ReadAt      *time.Time          `json:"read_at"`
	CreatedAt   time.Time           `json:"created_at"`
}

func toNotificationResponse(n entity.Notification) NotificationResponse {
	data := n.Data
	if data == nil {
		data = valueobject.JSONMap{}
	}

	return NotificationResponse{
		ID:          strconv.FormatInt(n.ID, 10),
		RecipientID: strconv.FormatInt(n.RecipientID, 10),
		Title:       n.Title,
		Message:     n.Message,
		Type:        n.Type.String(),
		Data:        data,
		ReadAt:      n.ReadAt,
		CreatedAt:   n.CreatedAt,
	}
}

type NotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	pageMeta
}

type NotificationCreateResponse struct {
	NotificationResponse
}

func (NotificationCreateResponse) StatusCode() int { return http.StatusCreated }

func (NotificationCreateResponse) Message() string { return "Notification created successfully" }

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

func (MarkAllReadResponse) Message() string { return "All notifications marked as read" }

type MessageResponse struct {
	msg string
}

func (r MessageResponse) Message() string { return r.msg }
