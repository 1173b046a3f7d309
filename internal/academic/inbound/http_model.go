package inbound

import (
	"net/http"
	"time"

	"github.com/shandysiswandi/academia/internal/academic/entity"
	"github.com/shandysiswandi/academia/internal/academic/usecase"
	"github.com/shandysiswandi/academia/internal/pkg/valueobject"
)

const dateLayout = "2006-01-02"

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

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

type CourseResponse struct {
	ID               int64             `json:"id,string"`
	Title            string            `json:"title"`
	Description      *string           `json:"description"`
	Code             string            `json:"code"`
	DurationHours    int32             `json:"duration_hours"`
	Price            valueobject.Money `json:"price"`
	Level            string            `json:"level"`
	Instructor       *string           `json:"instructor"`
	IsActive         bool              `json:"is_active"`
	EnrollmentsCount int64             `json:"enrollments_count"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func toCourseResponse(c entity.Course) CourseResponse {
	return CourseResponse{
		ID:               c.ID,
		Title:            c.Title,
		Description:      c.Description,
		Code:             c.Code,
		DurationHours:    c.DurationHours,
		Price:            c.Price,
		Level:            c.Level.String(),
		Instructor:       c.Instructor,
		IsActive:         c.IsActive,
		EnrollmentsCount: c.EnrollmentsCount,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

type CoursesResponse struct {
	Courses []CourseResponse `json:"courses"`
	pageMeta
}

func toCoursesResponse(out *usecase.CourseListOutput) CoursesResponse {
	items := make([]CourseResponse, 0, len(out.Courses))
	for _, c := range out.Courses {
		items = append(items, toCourseResponse(c))
	}
	return CoursesResponse{Courses: items, pageMeta: pageMeta{total: out.Total, size: out.Size, page: out.Page}}
}

type CourseCreateResponse struct{ CourseResponse }

func (CourseCreateResponse) StatusCode() int { return http.StatusCreated }
func (CourseCreateResponse) Message() string { return "Course created successfully" }

type CourseUpdateResponse struct{ CourseResponse }

func (CourseUpdateResponse) Message() string { return "Course updated successfully" }

type StudentResponse struct {
	ID               int64     `json:"id,string"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	Phone            *string   `json:"phone"`
	DateOfBirth      *string   `json:"date_of_birth" example:"2000-01-31"`
	Address          *string   `json:"address"`
	City             *string   `json:"city"`
	Country          *string   `json:"country"`
	EducationLevel   *string   `json:"education_level"`
	HasResume        bool      `json:"has_resume"`
	IsActive         bool      `json:"is_active"`
	EnrollmentsCount int64     `json:"enrollments_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func toStudentResponse(s entity.Student) StudentResponse {
	return StudentResponse{
		ID:               s.ID,
		FirstName:        s.FirstName,
		LastName:         s.LastName,
		FullName:         s.FullName(),
		Email:            s.Email,
		Phone:            s.Phone,
		DateOfBirth:      formatDate(s.DateOfBirth),
		Address:          s.Address,
		City:             s.City,
		Country:          s.Country,
		EducationLevel:   s.EducationLevel,
		HasResume:        s.ResumePath != nil,
		IsActive:         s.IsActive,
		EnrollmentsCount: s.EnrollmentsCount,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

type StudentsResponse struct {
	Students []StudentResponse `json:"students"`
	pageMeta
}

func toStudentsResponse(out *usecase.StudentListOutput) StudentsResponse {
	items := make([]StudentResponse, 0, len(out.Students))
	for _, s := range out.Students {
		items = append(items, toStudentResponse(s))
	}
	return StudentsResponse{Students: items, pageMeta: pageMeta{total: out.Total, size: out.Size, page: out.Page}}
}

type StudentCreateResponse struct{ StudentResponse }

func (StudentCreateResponse) StatusCode() int { return http.StatusCreated }
func (StudentCreateResponse) Message() string { return "Student created successfully" }

type StudentUpdateResponse struct{ StudentResponse }

func (StudentUpdateResponse) Message() string { return "Student updated successfully" }

type ResumeUploadResponse struct {
	ResumePath string `json:"resume_path"`
}

func (ResumeUploadResponse) Message() string { return "Resume uploaded successfully" }

type EnrollmentStudent struct {
	ID       int64  `json:"id,string"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type EnrollmentCourse struct {
	ID    int64  `json:"id,string"`
	Title string `json:"title"`
	Code  string `json:"code"`
}

type EnrollmentResponse struct {
	ID               int64             `json:"id,string"`
	Student          EnrollmentStudent `json:"student"`
	Course           EnrollmentCourse  `json:"course"`
	EnrollmentDate   string            `json:"enrollment_date" example:"2026-01-31"`
	AmountPaid       valueobject.Money `json:"amount_paid"`
	PaymentStatus    string            `json:"payment_status"`
	EnrollmentStatus string            `json:"enrollment_status"`
	CompletionDate   *string           `json:"completion_date"`
	Remarks          *string           `json:"remarks"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func toEnrollmentResponse(e entity.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID: e.ID,
		Student: EnrollmentStudent{
			ID:       e.Student.ID,
			FullName: e.Student.FirstName + " " + e.Student.LastName,
			Email:    e.Student.Email,
		},
		Course:           EnrollmentCourse{ID: e.Course.ID, Title: e.Course.Title, Code: e.Course.Code},
		EnrollmentDate:   e.EnrollmentDate.Format(dateLayout),
		AmountPaid:       e.AmountPaid,
		PaymentStatus:    e.PaymentStatus.String(),
		EnrollmentStatus: e.EnrollmentStatus.String(),
		CompletionDate:   formatDate(e.CompletionDate),
		Remarks:          e.Remarks,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

type EnrollmentsResponse struct {
	Enrollments []EnrollmentResponse `json:"enrollments"`
	pageMeta
}

func toEnrollmentsResponse(out *usecase.EnrollmentListOutput) EnrollmentsResponse {
	items := make([]EnrollmentResponse, 0, len(out.Enrollments))
	for _, e := range out.Enrollments {
		items = append(items, toEnrollmentResponse(e))
	}
	return EnrollmentsResponse{Enrollments: items, pageMeta: pageMeta{total: out.Total, size: out.Size, page: out.Page}}
}

type EnrollmentCreateResponse struct{ EnrollmentResponse }

func (EnrollmentCreateResponse) StatusCode() int { return http.StatusCreated }
func (EnrollmentCreateResponse) Message() string { return "Enrollment created successfully" }

type EnrollmentUpdateResponse struct{ EnrollmentResponse }

func (EnrollmentUpdateResponse) Message() string { return "Enrollment updated successfully" }

type DeleteResponse struct {
	msg string
}

func (r DeleteResponse) Message() string { return r.msg }
