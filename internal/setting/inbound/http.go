package inbound

import (
	"context"

	"github.com/shandysiswandi/academia/internal/pkg/router"
	"github.com/shandysiswandi/academia/internal/setting/entity"
	"github.com/shandysiswandi/academia/internal/setting/usecase"
)

type uc interface {
	SettingList(ctx context.Context, in usecase.SettingListInput) (*usecase.SettingListOutput, error)
	SettingDetail(ctx context.Context, id int64) (*entity.Setting, error)
	SettingByKey(ctx context.Context, key string) (*entity.Setting, error)
	SettingsByGroup(ctx context.Context, group string) ([]entity.Setting, error)
	PublicSettingsByGroup(ctx context.Context, group string) ([]entity.Setting, error)
	SettingCreate(ctx context.Context, in usecase.SettingCreateInput) (*entity.Setting, error)
	SettingUpdate(ctx context.Context, in usecase.SettingUpdateInput) (*entity.Setting, error)
	SettingDelete(ctx context.Context, id int64) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/public/settings/:group", end.PublicByGroup)

	r.GET("/api/v1/settings", end.List, r.Authorize("settings", "read"))
	r.GET("/api/v1/settings/:id", end.Detail, r.Authorize("settings", "read"))
	r.GET("/api/v1/settings-by-key/:key", end.ByKey, r.Authorize("settings", "read"))
	r.GET("/api/v1/settings-by-group/:group", end.ByGroup, r.Authorize("settings", "read"))
	r.POST("/api/v1/settings", end.Create, r.Authorize("settings", "create"))
	r.PUT("/api/v1/settings/:id", end.Update, r.Authorize("settings", "update"))
	r.DELETE("/api/v1/settings/:id", end.Delete, r.Authorize("settings", "delete"))
}
