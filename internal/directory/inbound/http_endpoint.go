package inbound

import (
	"strconv"

	"github.com/shandysiswandi/academia/internal/directory/entity"
	"github.com/shandysiswandi/academia/internal/directory/usecase"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/router"
)

type HTTPEndpoint struct {
	uc        uc
	mediaBase string
}

func paging(r *router.Request) (page, size int32, err error) {
	if page, err = r.GetQueryInt32("page"); err != nil {
		return 0, 0, err
	}
	if size, err = r.GetQueryInt32("size"); err != nil {
		return 0, 0, err
	}
	return page, size, nil
}

// formInt reads an optional integer form value of a multipart request.
func formInt(r *router.Request, key string) (*int, error) {
	v := r.FormValue(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, goerror.NewInvalidInput(nil, key, "The "+key+" must be an integer.")
	}
	return &n, nil
}

func formString(r *router.Request, key string) *string {
	if v := r.FormValue(key); v != "" {
		return &v
	}
	return nil
}

// @Summary List staff members
// @Description Same contract for /api/v1/academic-council.
// @Tags Directory
// @Security BearerAuth
// @Produce json
// @Param is_active query bool false "Active filter"
// @Param page query int false "Page number"
// @Param size query int false "Page size (default 10)"
// @Success 200 {object} router.successResponse{data=StaffListResponse} "Members"
// @Router /api/v1/management [get]
func (h *HTTPEndpoint) StaffList(kind entity.Kind) router.Handler {
	return func(r *router.Request) (any, error) {
		page, size, err := paging(r)
		if err != nil {
			return nil, err
		}

		isActive, err := r.GetQueryBool("is_active")
		if err != nil {
			return nil, err
		}

		out, err := h.uc.StaffList(r.Context(), usecase.StaffListInput{Kind: kind, IsActive: isActive, Page: page, Size: size})
		if err != nil {
			return nil, err
		}

		return StaffListResponse{
			Members:  toStaffList(out.Members, h.mediaBase),
			pageMeta: pageMeta{total: out.Total, size: out.Size, page: out.Page},
		}, nil
	}
}

// @Summary Get staff member
// @Tags Directory
// @Security BearerAuth
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} router.successResponse{data=StaffResponse} "Member"
// @Failure 404 {object} router.errorResponse "Not found"
// @Router /api/v1/management/{id} [get]
func (h *HTTPEndpoint) StaffDetail(kind entity.Kind) router.Handler {
	return func(r *router.Request) (any, error) {
		id, err := r.GetParamInt64("id")
		if err != nil {
			return nil, err
		}

		p, err := h.uc.StaffDetail(r.Context(), kind, id)
		if err != nil {
			return nil, err
		}

		return toStaffResponse(*p, h.mediaBase), nil
	}
}

// @Summary Create staff member
// @Description Email and phone are kept for academic council members only.
// @Tags Directory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payload body usecase.StaffCreateInput true "Member"
// @Success 201 {object} router.successResponse{data=StaffResponse} "Created"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/management [post]
func (h *HTTPEndpoint) StaffCreate(kind entity.Kind) router.Handler {
	return func(r *router.Request) (any, error) {
		var in usecase.StaffCreateInput
		if err := r.DecodeBody(&in); err != nil {
			return nil, err
		}
		in.Kind = kind

		p, err := h.uc.StaffCreate(r.Context(), in)
		if err != nil {
			return nil, err
		}

		return StaffCreateResponse{StaffResponse: toStaffResponse(*p, h.mediaBase), label: kind.Label()}, nil
	}
}

// @Summary Update staff member
// @Tags Directory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Param payload body usecase.StaffUpdateInput true "Changed fields"
// @Success 200 {object} router.successResponse{data=StaffResponse} "Updated"
// @Failure 404 {object} router.errorResponse "Not found"
// @Router /api/v1/management/{id} [put]
func (h *HTTPEndpoint) StaffUpdate(kind entity.Kind) router.Handler {
	return func(r *router.Request) (any, error) {
		id, err := r.GetParamInt64("id")
		if err != nil {
			return nil, err
		}

		var in usecase.StaffUpdateInput
		if err := r.DecodeBody(&in); err != nil {
			return nil, err
		}
		in.Kind, in.ID = kind, id

		p, err := h.uc.StaffUpdate(r.Context(), in)
		if err != nil {
			return nil, err
		}

		return StaffUpdateResponse{StaffResponse: toStaffResponse(*p, h.mediaBase), label: kind.Label()}, nil
	}
}

// @Summary Delete staff member
// @Tags Directory
// @Security BearerAuth
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} router.successResponse "Deleted"
// @Failure 404 {object} router.errorResponse "Not found"
// @Router /api/v1/management/{id} [delete]
func (h *HTTPEndpoint) StaffDelete(kind entity.Kind) router.Handler {
	return func(r *router.Request) (any, error) {
		id, err := r.GetParamInt64("id")
		if err != nil {
			return nil, err
		}

		if err := h.uc.StaffDelete(r.Context(), kind, id); err != nil {
			return nil, err
		}

		return DeleteResponse{msg: kind.Label() + " deleted successfully"}, nil
	}
}

// @Summary Upload staff picture
// @Description The picture is cropped and scaled to the preset or custom box and stored as JPEG.
// @Tags Directory
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Param id path int true "Member ID"
// @Param image formData file true "jpeg, png, gif or webp up to 4 MB"
// @Param image_size formData string false "small, medium or large"
// @Param image_width formData int false "50..2000"
// @Param image_height formData int false "50..2000"
// @Success 200 {object} router.successResponse{data=StaffResponse} "Updated"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/management/{id}/image [post]
func (h *HTTPEndpoint) StaffImage(kind entity.Kind) router.Handler {
	return func(r *router.Request) (any, error) {
		id, err := r.GetParamInt64("id")
		if err != nil {
			return nil, err
		}

		f, err := r.FormFile("image", usecase.ImageMaxBytes)
		if err != nil {
			return nil, err
		}

		width, err := formInt(r, "image_width")
		if err != nil {
			return nil, err
		}
		height, err := formInt(r, "image_height")
		if err != nil {
			return nil, err
		}

		p, err := h.uc.StaffImageUpload(r.Context(), usecase.StaffImageInput{
			Kind:        kind,
			ID:          id,
			ContentType: f.ContentType,
			Data:        f.Data,
			ImageSize:   formString(r, "image_size"),
			ImageWidth:  width,
			ImageHeight: height,
		})
		if err != nil {
			return nil, err
		}

		return StaffUpdateResponse{StaffResponse: toStaffResponse(*p, h.mediaBase), label: kind.Label()}, nil
	}
}

// @Summary Public staff directory
// @Description Active members ordered for display. Same contract for /api/v1/public/academic-council.
// @Tags Public
// @Produce json
// @Success 200 {object} router.successResponse{data=[]StaffResponse} "Members"
// @Router /api/v1/public/management [get]
func (h *HTTPEndpoint) PublicStaff(kind entity.Kind) router.Handler {
	return func(r *router.Request) (any, error) {
		items, err := h.uc.PublicStaff(r.Context(), kind)
		if err != nil {
			return nil, err
		}

		return toStaffList(items, h.mediaBase), nil
	}
}

// @Summary List facilities
// @Tags Facilities
// @Security BearerAuth
// @Produce json
// @Param is_active query bool false "Active filter"
// @Param is_featured query bool false "Featured filter"
// @Param category query string false "Category"
// @Param page query int false "Page number"
// @Param size query int false "Page size (default 10)"
// @Success 200 {object} router.successResponse{data=FacilitiesResponse} "Facilities"
// @Router /api/v1/facilities [get]
func (h *HTTPEndpoint) FacilityList(r *router.Request) (any, error) {
	page, size, err := paging(r)
	if err != nil {
		return nil, err
	}

	isActive, err := r.GetQueryBool("is_active")
	if err != nil {
		return nil, err
	}
	isFeatured, err := r.GetQueryBool("is_featured")
	if err != nil {
		return nil, err
	}

	var category *string
	if v := r.GetQuery("category"); v != "" {
		category = &v
	}

	out, err := h.uc.FacilityList(r.Context(), usecase.FacilityListInput{
		IsActive:   isActive,
		IsFeatured: isFeatured,
		Category:   category,
		Page:       page,
		Size:       size,
	})
	if err != nil {
		return nil, err
	}

	return FacilitiesResponse{
		Facilities: toFacilityList(out.Facilities, h.mediaBase),
		pageMeta:   pageMeta{total: out.Total, size: out.Size, page: out.Page},
	}, nil
}

// @Summary Get facility
// @Tags Facilities
// @Security BearerAuth
// @Produce json
// @Param id path int true "Facility ID"
// @Success 200 {object} router.successResponse{data=FacilityResponse} "Facility"
// @Failure 404 {object} router.errorResponse "Not found"
// @Router /api/v1/facilities/{id} [get]
func (h *HTTPEndpoint) FacilityDetail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	f, err := h.uc.FacilityDetail(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return toFacilityResponse(*f, h.mediaBase), nil
}

// @Summary Create facility
// @Tags Facilities
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payload body usecase.FacilityCreateInput true "Facility"
// @Success 201 {object} router.successResponse{data=FacilityResponse} "Created"
// @Failure 409 {object} router.errorResponse "Name taken"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/facilities [post]
func (h *HTTPEndpoint) FacilityCreate(r *router.Request) (any, error) {
	var in usecase.FacilityCreateInput
	if err := r.DecodeBody(&in); err != nil {
		return nil, err
	}

	f, err := h.uc.FacilityCreate(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return FacilityCreateResponse{FacilityResponse: toFacilityResponse(*f, h.mediaBase)}, nil
}

// @Summary Update facility
// @Tags Facilities
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Facility ID"
// @Param payload body usecase.FacilityUpdateInput true "Changed fields"
// @Success 200 {object} router.successResponse{data=FacilityResponse} "Updated"
// @Failure 409 {object} router.errorResponse "Name taken"
// @Router /api/v1/facilities/{id} [put]
func (h *HTTPEndpoint) FacilityUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var in usecase.FacilityUpdateInput
	if err := r.DecodeBody(&in); err != nil {
		return nil, err
	}
	in.ID = id

	f, err := h.uc.FacilityUpdate(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return FacilityUpdateResponse{FacilityResponse: toFacilityResponse(*f, h.mediaBase)}, nil
}

// @Summary Delete facility
// @Tags Facilities
// @Security BearerAuth
// @Produce json
// @Param id path int true "Facility ID"
// @Success 200 {object} router.successResponse "Deleted"
// @Failure 404 {object} router.errorResponse "Not found"
// @Router /api/v1/facilities/{id} [delete]
func (h *HTTPEndpoint) FacilityDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.FacilityDelete(r.Context(), id); err != nil {
		return nil, err
	}

	return DeleteResponse{msg: "Facility deleted successfully"}, nil
}

// @Summary Upload facility picture
// @Description The picture is kept inline and served back as a data URI.
// @Tags Facilities
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Param id path int true "Facility ID"
// @Param image formData file true "jpeg, png, gif or webp up to 4 MB"
// @Success 200 {object} router.successResponse{data=FacilityResponse} "Updated"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/facilities/{id}/image [post]
func (h *HTTPEndpoint) FacilityImage(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	file, err := r.FormFile("image", usecase.ImageMaxBytes)
	if err != nil {
		return nil, err
	}

	f, err := h.uc.FacilityImageUpload(r.Context(), usecase.FacilityImageInput{ID: id, ContentType: file.ContentType, Data: file.Data})
	if err != nil {
		return nil, err
	}

	return FacilityUpdateResponse{FacilityResponse: toFacilityResponse(*f, h.mediaBase)}, nil
}

// @Summary Public facilities
// @Tags Public
// @Produce json
// @Success 200 {object} router.successResponse{data=[]FacilityResponse} "Facilities"
// @Router /api/v1/public/facilities [get]
func (h *HTTPEndpoint) PublicFacilities(r *router.Request) (any, error) {
	items, err := h.uc.PublicFacilities(r.Context())
	if err != nil {
		return nil, err
	}

	return toFacilityList(items, h.mediaBase), nil
}
