package inbound

import (
	"net/http"
	"time"

	"github.com/shandysiswandi/academia/internal/setting/entity"
)

type SettingCreateRequest struct {
	Key         string  `json:"key"`
	Value       *string `json:"value"`
	Type        string  `json:"type"`
	Group       string  `json:"group"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"is_public"`
}

type SettingUpdateRequest struct {
	Key         *string `json:"key"`
	Value       *string `json:"value"`
	Type        *string `json:"type"`
	Group       *string `json:"group"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"is_public"`
}

type SettingResponse struct {
	ID          int64     `json:"id,string"`
	Key         string    `json:"key"`
	Value       *string   `json:"value"`
	Type        string    `json:"type"`
	Group       string    `json:"group"`
	Description *string   `json:"description"`
	IsPublic    bool      `json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toSettingResponse(s entity.Setting) SettingResponse {
	return SettingResponse{
		ID:          s.ID,
		Key:         s.Key,
		Value:       s.Value,
		Type:        s.Type.String(),
		Group:       s.Group,
		Description: s.Description,
		IsPublic:    s.IsPublic,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toSettingResponses(items []entity.Setting) []SettingResponse {
	out := make([]SettingResponse, 0, len(items))
	for _, s := range items {
		out = append(out, toSettingResponse(s))
	}
	return out
}

type SettingsResponse struct {
	Settings []SettingResponse `json:"settings"`
	// meta
	total int64
	size  int32
	page  int32
}

func (r SettingsResponse) Meta() map[string]any {
	return map[string]any{
		"total": r.total,
		"size":  r.size,
		"page":  r.page,
	}
}

type SettingGroupResponse struct {
	Group    string            `json:"group"`
	Settings []SettingResponse `json:"settings"`
}

type SettingCreateResponse struct {
	SettingResponse
}

func (SettingCreateResponse) StatusCode() int {
	return http.StatusCreated
}

func (SettingCreateResponse) Message() string {
	return "Setting created successfully"
}

type SettingUpdateResponse struct {
	SettingResponse
}

func (SettingUpdateResponse) Message() string {
	return "Setting updated successfully"
}

type SettingDeleteResponse struct{}

func (SettingDeleteResponse) Message() string {
	return "Setting deleted successfully"
}
