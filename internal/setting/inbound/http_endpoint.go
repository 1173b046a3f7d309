package inbound

import (
	"github.com/shandysiswandi/academia/internal/pkg/router"
	"github.com/shandysiswandi/academia/internal/setting/usecase"
)

type HTTPEndpoint struct {
	uc uc
}

// List returns settings ordered by group and key. Sensitive values are masked.
// @Summary List settings
// @Tags Settings
// @Security BearerAuth
// @Produce json
// @Param group query string false "Group filter"
// @Param is_public query bool false "Visibility filter"
// @Param page query int false "Page number"
// @Param size query int false "Page size (default 50)"
// @Success 200 {object} router.successResponse{data=SettingsResponse} "Settings"
// @Failure 400 {object} router.errorResponse "Invalid query"
// @Router /api/v1/settings [get]
func (h *HTTPEndpoint) List(r *router.Request) (any, error) {
	size, err := r.GetQueryInt32("size")
	if err != nil {
		return nil, err
	}

	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}

	isPublic, err := r.GetQueryBool("is_public")
	if err != nil {
		return nil, err
	}

	in := usecase.SettingListInput{IsPublic: isPublic, Page: page, Size: size}
	if g := r.GetQuery("group"); g != "" {
		in.Group = &g
	}

	resp, err := h.uc.SettingList(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return SettingsResponse{
		Settings: toSettingResponses(resp.Settings),
		total:    resp.Total,
		size:     resp.Size,
		page:     resp.Page,
	}, nil
}

// @Summary Get setting
// @Tags Settings
// @Security BearerAuth
// @Produce json
// @Param id path int true "Setting ID"
// @Success 200 {object} router.successResponse{data=SettingResponse} "Setting"
// @Failure 404 {object} router.errorResponse "Setting not found"
// @Router /api/v1/settings/{id} [get]
func (h *HTTPEndpoint) Detail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	st, err := h.uc.SettingDetail(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return toSettingResponse(*st), nil
}

// @Summary Get setting by key
// @Tags Settings
// @Security BearerAuth
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} router.successResponse{data=SettingResponse} "Setting"
// @Failure 404 {object} router.errorResponse "Setting not found"
// @Router /api/v1/settings-by-key/{key} [get]
func (h *HTTPEndpoint) ByKey(r *router.Request) (any, error) {
	st, err := h.uc.SettingByKey(r.Context(), r.GetParam("key"))
	if err != nil {
		return nil, err
	}

	return toSettingResponse(*st), nil
}

// @Summary List settings of a group
// @Tags Settings
// @Security BearerAuth
// @Produce json
// @Param group path string true "Group"
// @Success 200 {object} router.successResponse{data=SettingGroupResponse} "Settings"
// @Router /api/v1/settings-by-group/{group} [get]
func (h *HTTPEndpoint) ByGroup(r *router.Request) (any, error) {
	group := r.GetParam("group")

	items, err := h.uc.SettingsByGroup(r.Context(), group)
	if err != nil {
		return nil, err
	}

	return SettingGroupResponse{Group: group, Settings: toSettingResponses(items)}, nil
}

// PublicByGroup is reachable without a token and only lists public settings.
// @Summary List public settings of a group
// @Tags Public
// @Produce json
// @Param group path string true "Group"
// @Success 200 {object} router.successResponse{data=SettingGroupResponse} "Settings"
// @Router /api/v1/public/settings/{group} [get]
func (h *HTTPEndpoint) PublicByGroup(r *router.Request) (any, error) {
	group := r.GetParam("group")

	items, err := h.uc.PublicSettingsByGroup(r.Context(), group)
	if err != nil {
		return nil, err
	}

	return SettingGroupResponse{Group: group, Settings: toSettingResponses(items)}, nil
}

// @Summary Create setting
// @Tags Settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body SettingCreateRequest true "Setting"
// @Success 201 {object} router.successResponse{data=SettingResponse} "Created"
// @Failure 409 {object} router.errorResponse "Key already taken"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/settings [post]
func (h *HTTPEndpoint) Create(r *router.Request) (any, error) {
	var req SettingCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	st, err := h.uc.SettingCreate(r.Context(), usecase.SettingCreateInput{
		Key:         req.Key,
		Value:       req.Value,
		Type:        req.Type,
		Group:       req.Group,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		return nil, err
	}

	return SettingCreateResponse{toSettingResponse(*st)}, nil
}

// @Summary Update setting
// @Tags Settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Setting ID"
// @Param request body SettingUpdateRequest true "Fields to change"
// @Success 200 {object} router.successResponse{data=SettingResponse} "Updated"
// @Failure 404 {object} router.errorResponse "Setting not found"
// @Failure 409 {object} router.errorResponse "Key already taken"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/settings/{id} [put]
func (h *HTTPEndpoint) Update(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req SettingUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	st, err := h.uc.SettingUpdate(r.Context(), usecase.SettingUpdateInput{
		ID:          id,
		Key:         req.Key,
		Value:       req.Value,
		Type:        req.Type,
		Group:       req.Group,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		return nil, err
	}

	return SettingUpdateResponse{toSettingResponse(*st)}, nil
}

// @Summary Delete setting
// @Tags Settings
// @Security BearerAuth
// @Produce json
// @Param id path int true "Setting ID"
// @Success 200 {object} router.successResponse "Deleted"
// @Failure 404 {object} router.errorResponse "Setting not found"
// @Router /api/v1/settings/{id} [delete]
func (h *HTTPEndpoint) Delete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.SettingDelete(r.Context(), id); err != nil {
		return nil, err
	}

	return SettingDeleteResponse{}, nil
}
