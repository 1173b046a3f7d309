package inbound

import (
	"net/http"
	"strconv"
	"time"

	"github.com/shandysiswandi/academia/internal/application/entity"
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

type SubmitResponse struct {
	SubmissionID string `json:"submission_id"`
}

func (SubmitResponse) StatusCode() int { return http.StatusCreated }

func (SubmitResponse) Message() string { return "Application submitted successfully" }

type SubmissionResponse struct {
	ID            string         `json:"id"`
	FormType      string         `json:"form_type"`
	FullName      string         `json:"full_name"`
	Email         string         `json:"email"`
	Phone         *string        `json:"phone"`
	Title         *string        `json:"title"`
	Status        string         `json:"status"`
	Payload       map[string]any `json:"payload"`
	AdminNotes    *string        `json:"admin_notes"`
	AdminViewedAt *time.Time     `json:"admin_viewed_at"`
	IP            *string        `json:"ip_address"`
	UserAgent     *string        `json:"user_agent"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func toSubmissionResponse(s entity.Submission) SubmissionResponse {
	payload := map[string]any(s.Payload)
	if payload == nil {
		payload = map[string]any{}
	}

	return SubmissionResponse{
		ID:            strconv.FormatInt(s.ID, 10),
		FormType:      s.FormType,
		FullName:      s.FullName,
		Email:         s.Email,
		Phone:         s.Phone,
		Title:         s.Title,
		Status:        s.Status.String(),
		Payload:       payload,
		AdminNotes:    s.AdminNotes,
		AdminViewedAt: s.AdminViewedAt,
		IP:            s.IP,
		UserAgent:     s.UserAgent,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

type SubmissionsResponse struct {
	Submissions []SubmissionResponse `json:"submissions"`
	pageMeta
}

type SubmissionUpdateResponse struct {
	SubmissionResponse
}

func (SubmissionUpdateResponse) Message() string { return "Application updated successfully" }

type DeleteResponse struct {
	msg string
}

func (r DeleteResponse) Message() string { return r.msg }
