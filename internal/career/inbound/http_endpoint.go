package inbound

import (
	"github.com/shandysiswandi/academia/internal/career/usecase"
	"github.com/shandysiswandi/academia/internal/pkg/router"
)

type HTTPEndpoint struct {
	uc uc
}

func listInput(r *router.Request) (usecase.ListInput, error) {
	page, err := r.GetQueryInt32("page")
	if err != nil {
		return usecase.ListInput{}, err
	}
	size, err := r.GetQueryInt32("size")
	if err != nil {
		return usecase.ListInput{}, err
	}
	isActive, err := r.GetQueryBool("is_active")
	if err != nil {
		return usecase.ListInput{}, err
	}
	return usecase.ListInput{IsActive: isActive, Page: page, Size: size}, nil
}

// @Summary List job postings
// @Tags Careers
// @Security BearerAuth
// @Produce json
// @Param is_active query bool false "Active filter"
// @Param page query int false "Page number"
// @Param size query int false "Page size (default 10)"
// @Success 200 {object} router.successResponse{data=JobPostingsResponse} "Job postings"
// @Router /api/v1/job-postings [get]
func (h *HTTPEndpoint) JobPostingList(r *router.Request) (any, error) {
	in, err := listInput(r)
	if err != nil {
		return nil, err
	}

	out, err := h.uc.JobPostingList(r.Context(), in)
	if err != nil {
		return nil, err
	}

	jobs := make([]JobPostingResponse, 0, len(out.Jobs))
	for _, j := range out.Jobs {
		jobs = append(jobs, toJobPostingResponse(j))
	}

	return JobPostingsResponse{Jobs: jobs, pageMeta: pageMeta{total: out.Total, size: out.Size, page: out.Page}}, nil
}

// @Summary Get job posting
// @Tags Careers
// @Security BearerAuth
// @Produce json
// @Param id path int true "Job posting ID"
// @Success 200 {object} router.successResponse{data=JobPostingResponse} "Job posting"
// @Failure 404 {object} router.errorResponse "Not found"
// @Router /api/v1/job-postings/{id} [get]
func (h *HTTPEndpoint) JobPostingDetail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	j, err := h.uc.JobPostingDetail(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return toJobPostingResponse(*j), nil
}

// @Summary Create job posting
// @Tags Careers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payload body usecase.JobPostingCreateInput true "Job posting"
// @Success 201 {object} router.successResponse{data=JobPostingResponse} "Created"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/job-postings [post]
func (h *HTTPEndpoint) JobPostingCreate(r *router.Request) (any, error) {
	var in usecase.JobPostingCreateInput
	if err := r.DecodeBody(&in); err != nil {
		return nil, err
	}

	j, err := h.uc.JobPostingCreate(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return JobPostingCreateResponse{JobPostingResponse: toJobPostingResponse(*j)}, nil
}

// @Summary Update job posting
// @Tags Careers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Job posting ID"
// @Param payload body usecase.JobPostingUpdateInput true "Changed fields"
// @Success 200 {object} router.successResponse{data=JobPostingResponse} "Updated"
// @Failure 404 {object} router.errorResponse "Not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/job-postings/{id} [put]
func (h *HTTPEndpoint) JobPostingUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var in usecase.JobPostingUpdateInput
	if err := r.DecodeBody(&in); err != nil {
		return nil, err
	}
	in.ID = id

	j, err := h.uc.JobPostingUpdate(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return JobPostingUpdateResponse{JobPostingResponse: toJobPostingResponse(*j)}, nil
}

// @Summary Delete job posting
// @Tags Careers
// @Security BearerAuth
// @Produce json
// @Param id path int true "Job posting ID"
// @Success 200 {object} router.successResponse "Deleted"
// @Failure 404 {object} router.errorResponse "Not found"
// @Router /api/v1/job-postings/{id} [delete]
func (h *HTTPEndpoint) JobPostingDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.JobPostingDelete(r.Context(), id); err != nil {
		return nil, err
	}

	return DeleteResponse{msg: "Job posting deleted successfully"}, nil
}

// @Summary List careers
// @Tags Careers
// @Security BearerAuth
// @Produce json
// @Param is_active query bool false "Active filter"
// @Param page query int false "Page number"
// @Param size query int false "Page size (default 10)"
// @Success 200 {object} router.successResponse{data=CareersResponse} "Careers"
// @Router /api/v1/careers [get]
func (h *HTTPEndpoint) CareerList(r *router.Request) (any, error) {
	in, err := listInput(r)
	if err != nil {
		return nil, err
	}

	out, err := h.uc.CareerList(r.Context(), in)
	if err != nil {
		return nil, err
	}

	careers := make([]CareerResponse, 0, len(out.Careers))
	for _, c := range out.Careers {
		careers = append(careers, toCareerResponse(c))
	}

	return CareersResponse{Careers: careers, pageMeta: pageMeta{total: out.Total, size: out.Size, page: out.Page}}, nil
}

// @Summary Get career
// @Tags Careers
// @Security BearerAuth
// @Produce json
// @Param id path int true "Career ID"
// @Success 200 {object} router.successResponse{data=CareerResponse} "Career"
// @Failure 404 {object} router.errorResponse "Not found"
// @Router /api/v1/careers/{id} [get]
func (h *HTTPEndpoint) CareerDetail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	c, err := h.uc.CareerDetail(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return toCareerResponse(*c), nil
}

// @Summary Create career
// @Tags Careers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payload body usecase.CareerCreateInput true "Career"
// @Success 201 {object} router.successResponse{data=CareerResponse} "Created"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/careers [post]
func (h *HTTPEndpoint) CareerCreate(r *router.Request) (any, error) {
	var in usecase.CareerCreateInput
	if err := r.DecodeBody(&in); err != nil {
		return nil, err
	}

	c, err := h.uc.CareerCreate(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return CareerCreateResponse{CareerResponse: toCareerResponse(*c)}, nil
}

// @Summary Update career
// @Tags Careers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Career ID"
// @Param payload body usecase.CareerUpdateInput true "Changed fields"
// @Success 200 {object} router.successResponse{data=CareerResponse} "Updated"
// @Failure 404 {object} router.errorResponse "Not found"
// @Router /api/v1/careers/{id} [put]
func (h *HTTPEndpoint) CareerUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var in usecase.CareerUpdateInput
	if err := r.DecodeBody(&in); err != nil {
		return nil, err
	}
	in.ID = id

	c, err := h.uc.CareerUpdate(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return CareerUpdateResponse{CareerResponse: toCareerResponse(*c)}, nil
}

// @Summary Delete career
// @Tags Careers
// @Security BearerAuth
// @Produce json
// @Param id path int true "Career ID"
// @Success 200 {object} router.successResponse "Deleted"
// @Failure 404 {object} router.errorResponse "Not found"
// @Router /api/v1/careers/{id} [delete]
func (h *HTTPEndpoint) CareerDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.CareerDelete(r.Context(), id); err != nil {
		return nil, err
	}

	return DeleteResponse{msg: "Career deleted successfully"}, nil
}
