package inbound

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/academia/internal/academic/entity"
	"github.com/shandysiswandi/academia/internal/academic/usecase"
	"github.com/shandysiswandi/academia/internal/pkg/router"
)

type uc interface {
	CourseList(ctx context.Context, in usecase.CourseListInput) (*usecase.CourseListOutput, error)
	CourseDetail(ctx context.Context, id int64) (*entity.Course, error)
	CourseCreate(ctx context.Context, in usecase.CourseCreateInput) (*entity.Course, error)
	CourseUpdate(ctx context.Context, in usecase.CourseUpdateInput) (*entity.Course, error)
	CourseDelete(ctx context.Context, id int64) error
	CourseEnrollments(ctx context.Context, in usecase.CourseEnrollmentsInput) (*usecase.EnrollmentListOutput, error)

	StudentList(ctx context.Context, in usecase.StudentListInput) (*usecase.StudentListOutput, error)
	StudentDetail(ctx context.Context, id int64) (*entity.Student, error)
	StudentCreate(ctx context.Context, in usecase.StudentCreateInput) (*entity.Student, error)
	StudentUpdate(ctx context.Context, in usecase.StudentUpdateInput) (*entity.Student, error)
	StudentDelete(ctx context.Context, id int64) error
	StudentEnrollments(ctx context.Context, in usecase.StudentEnrollmentsInput) (*usecase.EnrollmentListOutput, error)
	StudentResumeUpload(ctx context.Context, in usecase.ResumeUploadInput) (string, error)
	StudentResumeDownload(ctx context.Context, studentID int64) (*usecase.ResumeFile, error)
	StudentResumeDelete(ctx context.Context, studentID int64) error

	EnrollmentList(ctx context.Context, in usecase.EnrollmentListInput) (*usecase.EnrollmentListOutput, error)
	EnrollmentDetail(ctx context.Context, id int64) (*entity.Enrollment, error)
	EnrollmentCreate(ctx context.Context, in usecase.EnrollmentCreateInput) (*entity.Enrollment, error)
	EnrollmentUpdate(ctx context.Context, in usecase.EnrollmentUpdateInput) (*entity.Enrollment, error)
	EnrollmentDelete(ctx context.Context, id int64) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/courses", end.CourseList, r.Authorize("courses", "read"))
	r.GET("/api/v1/courses/:id", end.CourseDetail, r.Authorize("courses", "read"))
	r.GET("/api/v1/courses/:id/enrollments", end.CourseEnrollments, r.Authorize("enrollments", "read"))
	r.POST("/api/v1/courses", end.CourseCreate, r.Authorize("courses", "create"))
	r.PUT("/api/v1/courses/:id", end.CourseUpdate, r.Authorize("courses", "update"))
	r.DELETE("/api/v1/courses/:id", end.CourseDelete, r.Authorize("courses", "delete"))

	r.GET("/api/v1/students", end.StudentList, r.Authorize("students", "read"))
	r.GET("/api/v1/students/:id", end.StudentDetail, r.Authorize("students", "read"))
	r.GET("/api/v1/students/:id/enrollments", end.StudentEnrollments, r.Authorize("enrollments", "read"))
	r.POST("/api/v1/students", end.StudentCreate, r.Authorize("students", "create"))
	r.PUT("/api/v1/students/:id", end.StudentUpdate, r.Authorize("students", "update"))
	r.DELETE("/api/v1/students/:id", end.StudentDelete, r.Authorize("students", "delete"))
	r.POST("/api/v1/students/:id/resume", end.ResumeUpload, r.Authorize("students", "update"))
	r.GETRaw("/api/v1/students/:id/resume", http.HandlerFunc(end.ResumeDownload), r.Authorize("students", "read"))
	r.DELETE("/api/v1/students/:id/resume", end.ResumeDelete, r.Authorize("students", "update"))

	r.GET("/api/v1/enrollments", end.EnrollmentList, r.Authorize("enrollments", "read"))
	r.GET("/api/v1/enrollments/:id", end.EnrollmentDetail, r.Authorize("enrollments", "read"))
	r.POST("/api/v1/enrollments", end.EnrollmentCreate, r.Authorize("enrollments", "create"))
	r.PUT("/api/v1/enrollments/:id", end.EnrollmentUpdate, r.Authorize("enrollments", "update"))
	r.DELETE("/api/v1/enrollments/:id", end.EnrollmentDelete, r.Authorize("enrollments", "delete"))
}
