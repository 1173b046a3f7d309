package inbound

import (
	"net/http"
	"time"

	"github.com/shandysiswandi/academia/internal/directory/entity"
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

type StaffResponse struct {
	ID             int64     `json:"id,string"`
	Name           string    `json:"name"`
	Position       *string   `json:"position"`
	Designation    *string   `json:"designation"`
	Bio            *string   `json:"bio"`
	Qualifications *string   `json:"qualifications"`
	Email          *string   `json:"email,omitempty"`
	Phone          *string   `json:"phone,omitempty"`
	Department     *string   `json:"department"`
	Image          *string   `json:"image"`
	ImageURL       *string   `json:"image_url"`
	ImageSize      string    `json:"image_size"`
	ImageWidth     *int      `json:"image_width"`
	ImageHeight    *int      `json:"image_height"`
	Order          int32     `json:"order"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toStaffResponse(p entity.StaffProfile, base string) StaffResponse {
	return StaffResponse{
		ID:             p.ID,
		Name:           p.Name,
		Position:       p.Position,
		Designation:    p.Designation,
		Bio:            p.Bio,
		Qualifications: p.Qualifications,
		Email:          p.Email,
		Phone:          p.Phone,
		Department:     p.Department,
		Image:          p.Image,
		ImageURL:       entity.ImageURL(p.Image, nil, nil, base),
		ImageSize:      string(p.ImageSize),
		ImageWidth:     p.ImageWidth,
		ImageHeight:    p.ImageHeight,
		Order:          p.Order,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toStaffList(items []entity.StaffProfile, base string) []StaffResponse {
	out := make([]StaffResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toStaffResponse(p, base))
	}
	return out
}

type StaffListResponse struct {
	Members []StaffResponse `json:"members"`
	pageMeta
}

type StaffCreateResponse struct {
	StaffResponse
	label string
}

func (StaffCreateResponse) StatusCode() int { return http.StatusCreated }

func (r StaffCreateResponse) Message() string { return r.label + " created successfully" }

type StaffUpdateResponse struct {
	StaffResponse
	label string
}

func (r StaffUpdateResponse) Message() string { return r.label + " updated successfully" }

type FacilityResponse struct {
	ID          int64     `json:"id,string"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	ImageURL    *string   `json:"image_url"`
	Icon        *string   `json:"icon"`
	Category    *string   `json:"category"`
	Capacity    *int32    `json:"capacity"`
	Location    *string   `json:"location"`
	Features    []string  `json:"features"`
	IsFeatured  bool      `json:"is_featured"`
	Order       int32     `json:"order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toFacilityResponse(f entity.Facility, base string) FacilityResponse {
	features := f.Features
	if features == nil {
		features = []string{}
	}
	return FacilityResponse{
		ID:          f.ID,
		Name:        f.Name,
		Slug:        f.Slug,
		Description: f.Description,
		Image:       f.Image,
		ImageURL:    entity.ImageURL(f.Image, f.ImageData, f.ImageMime, base),
		Icon:        f.Icon,
		Category:    f.Category,
		Capacity:    f.Capacity,
		Location:    f.Location,
		Features:    features,
		IsFeatured:  f.IsFeatured,
		Order:       f.Order,
		IsActive:    f.IsActive,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func toFacilityList(items []entity.Facility, base string) []FacilityResponse {
	out := make([]FacilityResponse, 0, len(items))
	for _, f := range items {
		out = append(out, toFacilityResponse(f, base))
	}
	return out
}

type FacilitiesResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
	pageMeta
}

type FacilityCreateResponse struct {
	FacilityResponse
}

func (FacilityCreateResponse) StatusCode() int { return http.StatusCreated }

func (FacilityCreateResponse) Message() string { return "Facility created successfully" }

type FacilityUpdateResponse struct {
	FacilityResponse
}

func (FacilityUpdateResponse) Message() string { return "Facility updated successfully" }

type DeleteResponse struct {
	msg string
}

func (r DeleteResponse) Message() string { return r.msg }
