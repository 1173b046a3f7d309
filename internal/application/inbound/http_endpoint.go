package inbound

import (
	"strconv"

	"github.com/shandysiswandi/academia/internal/application/usecase"
	"github.com/shandysiswandi/academia/internal/pkg/router"
)

type HTTPEndpoint struct {
	uc uc
}

// @Summary Submit a public form
// @Description Stores an admission, contact or other public form. A repeated Idempotency-Key is rejected with 409.
// @Tags Public
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Client supplied idempotency key"
// @Param payload body usecase.SubmitInput true "Form"
// @Success 201 {object} router.successResponse{data=SubmitResponse} "Submitted"
// @Failure 409 {object} router.errorResponse "Duplicate submission"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/public/applications [post]
func (h *HTTPEndpoint) Submit(r *router.Request) (any, error) {
	var in usecase.SubmitInput
	if err := r.DecodeBody(&in); err != nil {
		return nil, err
	}
	in.IdempotencyKey = r.Header.Get("Idempotency-Key")
	in.IP = r.ClientIP()
	in.UserAgent = r.UserAgent()

	id, err := h.uc.Submit(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return SubmitResponse{SubmissionID: strconv.FormatInt(id, 10)}, nil
}

// @Summary List applications
// @Tags Applications
// @Security BearerAuth
// @Produce json
// @Param form_type query string false "Form type"
// @Param status query string false "new, in_review, contacted or closed"
// @Param search query string false "Matches name, email, phone or title"
// @Param page query int false "Page number"
// @Param size query int false "Page size (default 15)"
// @Success 200 {object} router.successResponse{data=SubmissionsResponse} "Applications"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/applications [get]
func (h *HTTPEndpoint) List(r *router.Request) (any, error) {
	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}
	size, err := r.GetQueryInt32("size")
	if err != nil {
		return nil, err
	}

	in := usecase.ListInput{Search: r.GetQuery("search"), Page: page, Size: size}
	if v := r.GetQuery("form_type"); v != "" {
		in.FormType = &v
	}
	if v := r.GetQuery("status"); v != "" {
		in.Status = &v
	}

	out, err := h.uc.List(r.Context(), in)
	if err != nil {
		return nil, err
	}

	subs := make([]SubmissionResponse, 0, len(out.Submissions))
	for _, s := range out.Submissions {
		subs = append(subs, toSubmissionResponse(s))
	}

	return SubmissionsResponse{Submissions: subs, pageMeta: pageMeta{total: out.Total, size: out.Size, page: out.Page}}, nil
}

// @Summary Get application
// @Description The first read stamps admin_viewed_at.
// @Tags Applications
// @Security BearerAuth
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} router.successResponse{data=SubmissionResponse} "Application"
// @Failure 404 {object} router.errorResponse "Not found"
// @Router /api/v1/applications/{id} [get]
func (h *HTTPEndpoint) Detail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	sub, err := h.uc.Detail(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return toSubmissionResponse(*sub), nil
}

// @Summary Update application
// @Tags Applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param payload body usecase.UpdateInput true "Status and notes"
// @Success 200 {object} router.successResponse{data=SubmissionResponse} "Updated"
// @Failure 404 {object} router.errorResponse "Not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/applications/{id} [put]
func (h *HTTPEndpoint) Update(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var in usecase.UpdateInput
	if err := r.DecodeBody(&in); err != nil {
		return nil, err
	}
	in.ID = id

	sub, err := h.uc.Update(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return SubmissionUpdateResponse{SubmissionResponse: toSubmissionResponse(*sub)}, nil
}

// @Summary Delete application
// @Tags Applications
// @Security BearerAuth
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} router.successResponse "Deleted"
// @Failure 404 {object} router.errorResponse "Not found"
// @Router /api/v1/applications/{id} [delete]
func (h *HTTPEndpoint) Delete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.Delete(r.Context(), id); err != nil {
		return nil, err
	}

	return DeleteResponse{msg: "Application removed"}, nil
}
