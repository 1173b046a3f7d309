package inbound

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/shandysiswandi/academia/internal/academic/usecase"
	"github.com/shandysiswandi/academia/internal/pkg/router"
)

type HTTPEndpoint struct {
	uc uc
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

func optional(r *router.Request, key string) *string {
	if v := r.GetQuery(key); v != "" {
		return &v
	}
	return nil
}

// @Summary List courses
// @Tags Courses
// @Security BearerAuth
// @Produce json
// @Param search query string false "Matches title, code or instructor"
// @Param level query string false "beginner, intermediate or advanced"
// @Param is_active query bool false "Active filter"
// @Param page query int false "Page number"
// @Param size query int false "Page size (default 15)"
// @Success 200 {object} router.successResponse{data=CoursesResponse} "Courses"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/courses [get]
func (h *HTTPEndpoint) CourseList(r *router.Request) (any, error) {
	page, size, err := paging(r)
	if err != nil {
		return nil, err
	}

	isActive, err := r.GetQueryBool("is_active")
	if err != nil {
		return nil, err
	}

	out, err := h.uc.CourseList(r.Context(), usecase.CourseListInput{
		Search:   r.GetQuery("search"),
		Level:    optional(r, "level"),
		IsActive: isActive,
		Page:     page,
		Size:     size,
	})
	if err != nil {
		return nil, err
	}

	return toCoursesResponse(out), nil
}

// @Summary Get course
// @Tags Courses
// @Security BearerAuth
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} router.successResponse{data=CourseResponse} "Course"
// @Failure 404 {object} router.errorResponse "Course not found"
// @Router /api/v1/courses/{id} [get]
func (h *HTTPEndpoint) CourseDetail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	c, err := h.uc.CourseDetail(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return toCourseResponse(*c), nil
}

// @Summary Create course
// @Tags Courses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body usecase.CourseCreateInput true "Course"
// @Success 201 {object} router.successResponse{data=CourseResponse} "Created"
// @Failure 409 {object} router.errorResponse "Code already taken"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/courses [post]
func (h *HTTPEndpoint) CourseCreate(r *router.Request) (any, error) {
	var in usecase.CourseCreateInput
	if err := r.DecodeBody(&in); err != nil {
		return nil, err
	}

	c, err := h.uc.CourseCreate(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return CourseCreateResponse{toCourseResponse(*c)}, nil
}

// @Summary Update course
// @Tags Courses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body usecase.CourseUpdateInput true "Fields to change"
// @Success 200 {object} router.successResponse{data=CourseResponse} "Updated"
// @Failure 404 {object} router.errorResponse "Course not found"
// @Failure 409 {object} router.errorResponse "Code already taken"
// @Router /api/v1/courses/{id} [put]
func (h *HTTPEndpoint) CourseUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var in usecase.CourseUpdateInput
	if err := r.DecodeBody(&in); err != nil {
		return nil, err
	}
	in.ID = id

	c, err := h.uc.CourseUpdate(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return CourseUpdateResponse{toCourseResponse(*c)}, nil
}

// @Summary Delete course
// @Tags Courses
// @Security BearerAuth
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} router.successResponse "Deleted"
// @Failure 404 {object} router.errorResponse "Course not found"
// @Failure 422 {object} router.errorResponse "Course has enrollments"
// @Router /api/v1/courses/{id} [delete]
func (h *HTTPEndpoint) CourseDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.CourseDelete(r.Context(), id); err != nil {
		return nil, err
	}

	return DeleteResponse{msg: "Course deleted successfully"}, nil
}

// @Summary List enrollments of a course
// @Tags Courses
// @Security BearerAuth
// @Produce json
// @Param id path int true "Course ID"
// @Param page query int false "Page number"
// @Param size query int false "Page size (default 15)"
// @Success 200 {object} router.successResponse{data=EnrollmentsResponse} "Enrollments"
// @Failure 404 {object} router.errorResponse "Course not found"
// @Router /api/v1/courses/{id}/enrollments [get]
func (h *HTTPEndpoint) CourseEnrollments(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	page, size, err := paging(r)
	if err != nil {
		return nil, err
	}

	out, err := h.uc.CourseEnrollments(r.Context(), usecase.CourseEnrollmentsInput{CourseID: id, Page: page, Size: size})
	if err != nil {
		return nil, err
	}

	return toEnrollmentsResponse(out), nil
}

// @Summary List students
// @Tags Students
// @Security BearerAuth
// @Produce json
// @Param search query string false "Matches name or email"
// @Param is_active query bool false "Active filter"
// @Param page query int false "Page number"
// @Param size query int false "Page size (default 15)"
// @Success 200 {object} router.successResponse{data=StudentsResponse} "Students"
// @Router /api/v1/students [get]
func (h *HTTPEndpoint) StudentList(r *router.Request) (any, error) {
	page, size, err := paging(r)
	if err != nil {
		return nil, err
	}

	isActive, err := r.GetQueryBool("is_active")
	if err != nil {
		return nil, err
	}

	out, err := h.uc.StudentList(r.Context(), usecase.StudentListInput{
		Search:   r.GetQuery("search"),
		IsActive: isActive,
		Page:     page,
		Size:     size,
	})
	if err != nil {
		return nil, err
	}

	return toStudentsResponse(out), nil
}

// @Summary Get student
// @Tags Students
// @Security BearerAuth
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} router.successResponse{data=StudentResponse} "Student"
// @Failure 404 {object} router.errorResponse "Student not found"
// @Router /api/v1/students/{id} [get]
func (h *HTTPEndpoint) StudentDetail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	st, err := h.uc.StudentDetail(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return toStudentResponse(*st), nil
}

// @Summary Create student
// @Tags Students
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body usecase.StudentCreateInput true "Student"
// @Success 201 {object} router.successResponse{data=StudentResponse} "Created"
// @Failure 409 {object} router.errorResponse "Email already taken"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/students [post]
func (h *HTTPEndpoint) StudentCreate(r *router.Request) (any, error) {
	var in usecase.StudentCreateInput
	if err := r.DecodeBody(&in); err != nil {
		return nil, err
	}

	st, err := h.uc.StudentCreate(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return StudentCreateResponse{toStudentResponse(*st)}, nil
}

// @Summary Update student
// @Tags Students
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body usecase.StudentUpdateInput true "Fields to change"
// @Success 200 {object} router.successResponse{data=StudentResponse} "Updated"
// @Failure 404 {object} router.errorResponse "Student not found"
// @Failure 409 {object} router.errorResponse "Email already taken"
// @Router /api/v1/students/{id} [put]
func (h *HTTPEndpoint) StudentUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var in usecase.StudentUpdateInput
	if err := r.DecodeBody(&in); err != nil {
		return nil, err
	}
	in.ID = id

	st, err := h.uc.StudentUpdate(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return StudentUpdateResponse{toStudentResponse(*st)}, nil
}

// @Summary Delete student
// @Tags Students
// @Security BearerAuth
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} router.successResponse "Deleted"
// @Failure 404 {object} router.errorResponse "Student not found"
// @Failure 422 {object} router.errorResponse "Student has enrollments"
// @Router /api/v1/students/{id} [delete]
func (h *HTTPEndpoint) StudentDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.StudentDelete(r.Context(), id); err != nil {
		return nil, err
	}

	return DeleteResponse{msg: "Student deleted successfully"}, nil
}

// @Summary List enrollments of a student
// @Tags Students
// @Security BearerAuth
// @Produce json
// @Param id path int true "Student ID"
// @Param page query int false "Page number"
// @Param size query int false "Page size (default 15)"
// @Success 200 {object} router.successResponse{data=EnrollmentsResponse} "Enrollments"
// @Failure 404 {object} router.errorResponse "Student not found"
// @Router /api/v1/students/{id}/enrollments [get]
func (h *HTTPEndpoint) StudentEnrollments(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	page, size, err := paging(r)
	if err != nil {
		return nil, err
	}

	out, err := h.uc.StudentEnrollments(r.Context(), usecase.StudentEnrollmentsInput{StudentID: id, Page: page, Size: size})
	if err != nil {
		return nil, err
	}

	return toEnrollmentsResponse(out), nil
}

// @Summary Upload student resume
// @Tags Students
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Param id path int true "Student ID"
// @Param resume formData file true "pdf, doc or docx up to 2MB"
// @Success 200 {object} router.successResponse{data=ResumeUploadResponse} "Uploaded"
// @Failure 404 {object} router.errorResponse "Student not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/students/{id}/resume [post]
func (h *HTTPEndpoint) ResumeUpload(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	f, err := r.FormFile("resume", usecase.ResumeMaxBytes)
	if err != nil {
		return nil, err
	}

	key, err := h.uc.StudentResumeUpload(r.Context(), usecase.ResumeUploadInput{
		StudentID:   id,
		ContentType: f.ContentType,
		Data:        f.Data,
	})
	if err != nil {
		return nil, err
	}

	return ResumeUploadResponse{ResumePath: key}, nil
}

// ResumeDownload streams the stored file as an attachment.
// @Summary Download student resume
// @Tags Students
// @Security BearerAuth
// @Produce octet-stream
// @Param id path int true "Student ID"
// @Success 200 {file} file "Resume"
// @Failure 404 {object} router.errorResponse "No resume found"
// @Router /api/v1/students/{id}/resume [get]
func (h *HTTPEndpoint) ResumeDownload(w http.ResponseWriter, req *http.Request) {
	r := &router.Request{Request: req}
	ctx := req.Context()

	id, err := r.GetParamInt64("id")
	if err != nil {
		router.WriteError(ctx, w, err)
		return
	}

	file, err := h.uc.StudentResumeDownload(ctx, id)
	if err != nil {
		router.WriteError(ctx, w, err)
		return
	}
	defer file.Body.Close()

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	if file.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(file.Size, 10))
	}
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, file.Body); err != nil {
		slog.WarnContext(ctx, "resume download interrupted", "student_id", id, "error", err)
	}
}

// @Summary Delete student resume
// @Tags Students
// @Security BearerAuth
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} router.successResponse "Deleted"
// @Failure 404 {object} router.errorResponse "No resume found"
// @Router /api/v1/students/{id}/resume [delete]
func (h *HTTPEndpoint) ResumeDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.StudentResumeDelete(r.Context(), id); err != nil {
		return nil, err
	}

	return DeleteResponse{msg: "Resume deleted successfully"}, nil
}

// @Summary List enrollments
// @Tags Enrollments
// @Security BearerAuth
// @Produce json
// @Param student_id query int false "Student filter"
// @Param course_id query int false "Course filter"
// @Param payment_status query string false "pending, paid, failed or refunded"
// @Param enrollment_status query string false "active, completed, dropped or suspended"
// @Param page query int false "Page number"
// @Param size query int false "Page size (default 15)"
// @Success 200 {object} router.successResponse{data=EnrollmentsResponse} "Enrollments"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/enrollments [get]
func (h *HTTPEndpoint) EnrollmentList(r *router.Request) (any, error) {
	page, size, err := paging(r)
	if err != nil {
		return nil, err
	}

	in := usecase.EnrollmentListInput{
		PaymentStatus:    optional(r, "payment_status"),
		EnrollmentStatus: optional(r, "enrollment_status"),
		Page:             page,
		Size:             size,
	}
	if in.StudentID, err = r.GetQueryInt64("student_id"); err != nil {
		return nil, err
	}
	if in.CourseID, err = r.GetQueryInt64("course_id"); err != nil {
		return nil, err
	}

	out, err := h.uc.EnrollmentList(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return toEnrollmentsResponse(out), nil
}

// @Summary Get enrollment
// @Tags Enrollments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} router.successResponse{data=EnrollmentResponse} "Enrollment"
// @Failure 404 {object} router.errorResponse "Enrollment not found"
// @Router /api/v1/enrollments/{id} [get]
func (h *HTTPEndpoint) EnrollmentDetail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	e, err := h.uc.EnrollmentDetail(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return toEnrollmentResponse(*e), nil
}

// @Summary Create enrollment
// @Tags Enrollments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body usecase.EnrollmentCreateInput true "Enrollment"
// @Success 201 {object} router.successResponse{data=EnrollmentResponse} "Created"
// @Failure 409 {object} router.errorResponse "Student is already enrolled in this course"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/enrollments [post]
func (h *HTTPEndpoint) EnrollmentCreate(r *router.Request) (any, error) {
	var in usecase.EnrollmentCreateInput
	if err := r.DecodeBody(&in); err != nil {
		return nil, err
	}

	e, err := h.uc.EnrollmentCreate(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return EnrollmentCreateResponse{toEnrollmentResponse(*e)}, nil
}

// @Summary Update enrollment
// @Tags Enrollments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Enrollment ID"
// @Param request body usecase.EnrollmentUpdateInput true "Fields to change"
// @Success 200 {object} router.successResponse{data=EnrollmentResponse} "Updated"
// @Failure 404 {object} router.errorResponse "Enrollment not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/enrollments/{id} [put]
func (h *HTTPEndpoint) EnrollmentUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var in usecase.EnrollmentUpdateInput
	if err := r.DecodeBody(&in); err != nil {
		return nil, err
	}
	in.ID = id

	e, err := h.uc.EnrollmentUpdate(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return EnrollmentUpdateResponse{toEnrollmentResponse(*e)}, nil
}

// @Summary Delete enrollment
// @Tags Enrollments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} router.successResponse "Deleted"
// @Failure 404 {object} router.errorResponse "Enrollment not found"
// @Router /api/v1/enrollments/{id} [delete]
func (h *HTTPEndpoint) EnrollmentDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.EnrollmentDelete(r.Context(), id); err != nil {
		return nil, err
	}

	return DeleteResponse{msg: "Enrollment deleted successfully"}, nil
}
