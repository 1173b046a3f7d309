package inbound

import (
	"net/http"
	"time"

	"github.com/shandysiswandi/academia/internal/career/entity"
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

func employment(t *entity.EmploymentType) *string {
	if t == nil {
		return nil
	}
	s := string(*t)
	return &s
}

type JobPostingResponse struct {
	ID             int64              `json:"id,string"`
	Title          string             `json:"title"`
	Department     *string            `json:"department"`
	Description    *string            `json:"description"`
	Requirements   *string            `json:"requirements"`
	Location       *string            `json:"location"`
	EmploymentType *string            `json:"employment_type"`
	SalaryMin      *valueobject.Money `json:"salary_min"`
	SalaryMax      *valueobject.Money `json:"salary_max"`
	Deadline       *string            `json:"deadline"`
	IsActive       bool               `json:"is_active"`
	Order          int32              `json:"order"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func toJobPostingResponse(j entity.JobPosting) JobPostingResponse {
	var deadline *string
	if j.Deadline != nil {
		d := j.Deadline.Format("2006-01-02")
		deadline = &d
	}

	return JobPostingResponse{
		ID:             j.ID,
		Title:          j.Title,
		Department:     j.Department,
		Description:    j.Description,
		Requirements:   j.Requirements,
		Location:       j.Location,
		EmploymentType: employment(j.EmploymentType),
		SalaryMin:      j.SalaryMin,
		SalaryMax:      j.SalaryMax,
		Deadline:       deadline,
		IsActive:       j.IsActive,
		Order:          j.Order,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}

type JobPostingsResponse struct {
	Jobs []JobPostingResponse `json:"jobs"`
	pageMeta
}

type JobPostingCreateResponse struct {
	JobPostingResponse
}

func (JobPostingCreateResponse) StatusCode() int { return http.StatusCreated }

func (JobPostingCreateResponse) Message() string { return "Job posting created successfully" }

type JobPostingUpdateResponse struct {
	JobPostingResponse
}

func (JobPostingUpdateResponse) Message() string { return "Job posting updated successfully" }

type CareerResponse struct {
	ID             int64     `json:"id,string"`
	Title          string    `json:"title"`
	Description    *string   `json:"description"`
	Requirements   *string   `json:"requirements"`
	Location       *string   `json:"location"`
	EmploymentType *string   `json:"employment_type"`
	Department     *string   `json:"department"`
	ApplyURL       *string   `json:"apply_url"`
	IsActive       bool      `json:"is_active"`
	Order          int32     `json:"order"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toCareerResponse(c entity.Career) CareerResponse {
	return CareerResponse{
		ID:             c.ID,
		Title:          c.Title,
		Description:    c.Description,
		Requirements:   c.Requirements,
		Location:       c.Location,
		EmploymentType: employment(c.EmploymentType),
		Department:     c.Department,
		ApplyURL:       c.ApplyURL,
		IsActive:       c.IsActive,
		Order:          c.Order,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

type CareersResponse struct {
	Careers []CareerResponse `json:"careers"`
	pageMeta
}

type CareerCreateResponse struct {
	CareerResponse
}

func (CareerCreateResponse) StatusCode() int { return http.StatusCreated }

func (CareerCreateResponse) Message() string { return "Career created successfully" }

type CareerUpdateResponse struct {
	CareerResponse
}

func (CareerUpdateResponse) Message() string { return "Career updated successfully" }

type DeleteResponse struct {
	msg string
}

func (r DeleteResponse) Message() string { return r.msg }
