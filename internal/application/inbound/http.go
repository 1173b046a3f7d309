package inbound

import (
	"context"

	"github.com/shandysiswandi/academia/internal/application/entity"
	"github.com/shandysiswandi/academia/internal/application/usecase"
	"github.com/shandysiswandi/academia/internal/pkg/router"
)

type uc interface {
	Submit(ctx context.Context, in usecase.SubmitInput) (int64, error)
	List(ctx context.Context, in usecase.ListInput) (*usecase.ListOutput, error)
	Detail(ctx context.Context, id int64) (*entity.Submission, error)
	Update(ctx context.Context, in usecase.UpdateInput) (*entity.Submission, error)
	Delete(ctx context.Context, id int64) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/public/applications", end.Submit)

	r.GET("/api/v1/applications", end.List, r.Authorize("applications", "read"))
	r.GET("/api/v1/applications/:id", end.Detail, r.Authorize("applications", "read"))
	r.PUT("/api/v1/applications/:id", end.Update, r.Authorize("applications", "update"))
	r.DELETE("/api/v1/applications/:id", end.Delete, r.Authorize("applications", "delete"))
}
