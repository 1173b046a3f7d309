package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/academia/internal/academic/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/valueobject"
)

type EnrollmentListInput struct {
	StudentID        int64
	CourseID         int64
	PaymentStatus    *string `json:"payment_status" validate:"omitempty,oneof=pending paid failed refunded"`
	EnrollmentStatus *string `json:"enrollment_status" validate:"omitempty,oneof=active completed dropped suspended"`
	Page             int32
	Size             int32
}

type EnrollmentListOutput struct {
	Page        int32
	Size        int32
	Total       int64
	Enrollments []entity.Enrollment
}

func (s *Usecase) EnrollmentList(ctx context.Context, in EnrollmentListInput) (*EnrollmentListOutput, error) {
	ctx, span := s.startSpan(ctx, "EnrollmentList")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	filter := entity.EnrollmentFilter{StudentID: in.StudentID, CourseID: in.CourseID}
	if in.PaymentStatus != nil {
		ps := entity.PaymentStatus(*in.PaymentStatus)
		filter.PaymentStatus = &ps
	}
	if in.EnrollmentStatus != nil {
		es := entity.EnrollmentStatus(*in.EnrollmentStatus)
		filter.EnrollmentStatus = &es
	}

	return s.listEnrollments(ctx, filter, in.Page, in.Size)
}

func (s *Usecase) listEnrollments(ctx context.Context, filter entity.EnrollmentFilter, page, size int32) (*EnrollmentListOutput, error) {
	page, size = pageOf(page, size, 15)
	filter.Size = size
	filter.Offset = (page - 1) * size

	items, total, err := s.repoDB.ListEnrollments(ctx, filter)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list enrollments", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &EnrollmentListOutput{Page: page, Size: size, Total: total, Enrollments: items}, nil
}

func (s *Usecase) EnrollmentDetail(ctx context.Context, id int64) (*entity.Enrollment, error) {
	ctx, span := s.startSpan(ctx, "EnrollmentDetail")
	defer span.End()

	return s.getEnrollment(ctx, id)
}

type EnrollmentCreateInput struct {
	StudentID        int64             `json:"student_id,string" validate:"required"`
	CourseID         int64             `json:"course_id,string" validate:"required"`
	EnrollmentDate   string            `json:"enrollment_date" validate:"required,datetime=2006-01-02"`
	AmountPaid       valueobject.Money `json:"amount_paid" validate:"min=0"`
	PaymentStatus    string            `json:"payment_status" validate:"omitempty,oneof=pending paid failed refunded"`
	EnrollmentStatus string            `json:"enrollment_status" validate:"omitempty,oneof=active completed dropped suspended"`
	CompletionDate   *string           `json:"completion_date" validate:"omitempty,datetime=2006-01-02"`
	Remarks          *string           `json:"remarks" validate:"omitempty,max=1000"`
}

func (s *Usecase) EnrollmentCreate(ctx context.Context, in EnrollmentCreateInput) (*entity.Enrollment, error) {
	ctx, span := s.startSpan(ctx, "EnrollmentCreate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if err := s.ensureParticipants(ctx, in.StudentID, in.CourseID); err != nil {
		return nil, err
	}

	e := entity.Enrollment{
		ID:               s.uid.Generate(),
		StudentID:        in.StudentID,
		CourseID:         in.CourseID,
		EnrollmentDate:   *parseDate(&in.EnrollmentDate),
		AmountPaid:       in.AmountPaid,
		PaymentStatus:    entity.PaymentPending,
		EnrollmentStatus: entity.EnrollmentActive,
		CompletionDate:   parseDate(in.CompletionDate),
		Remarks:          in.Remarks,
	}
	if in.PaymentStatus != "" {
		e.PaymentStatus = entity.PaymentStatus(in.PaymentStatus)
	}
	if in.EnrollmentStatus != "" {
		e.EnrollmentStatus = entity.EnrollmentStatus(in.EnrollmentStatus)
	}
	if !e.CompletionValid() {
		return nil, errCompletionBeforeEnrollment
	}

	err := s.repoDB.CreateEnrollment(ctx, e)
	if errors.Is(err, goerror.ErrConflict) {
		slog.WarnContext(ctx, "student already enrolled", "student_id", in.StudentID, "course_id", in.CourseID)
		return nil, goerror.NewBusiness("Student is already enrolled in this course", goerror.CodeConflict)
	}
	if errors.Is(err, goerror.ErrReferenced) {
		// removed between the existence check and the insert
		return nil, goerror.NewInvalidInput(nil, "student_id", "The selected student or course does not exist.")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create enrollment", "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.getEnrollment(ctx, e.ID)
}

type EnrollmentUpdateInput struct {
	ID               int64              `json:"-"`
	EnrollmentDate   *string            `json:"enrollment_date" validate:"omitempty,datetime=2006-01-02"`
	AmountPaid       *valueobject.Money `json:"amount_paid" validate:"omitempty,min=0"`
	PaymentStatus    *string            `json:"payment_status" validate:"omitempty,oneof=pending paid failed refunded"`
	EnrollmentStatus *string            `json:"enrollment_status" validate:"omitempty,oneof=active completed dropped suspended"`
	CompletionDate   *string            `json:"completion_date" validate:"omitempty,datetime=2006-01-02"`
	Remarks          *string            `json:"remarks" validate:"omitempty,max=1000"`
}

func (s *Usecase) EnrollmentUpdate(ctx context.Context, in EnrollmentUpdateInput) (*entity.Enrollment, error) {
	ctx, span := s.startSpan(ctx, "EnrollmentUpdate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	e, err := s.getEnrollment(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if d := parseDate(in.EnrollmentDate); d != nil {
		e.EnrollmentDate = *d
	}
	if in.AmountPaid != nil {
		e.AmountPaid = *in.AmountPaid
	}
	if in.PaymentStatus != nil {
		e.PaymentStatus = entity.PaymentStatus(*in.PaymentStatus)
	}
	if in.EnrollmentStatus != nil {
		e.EnrollmentStatus = entity.EnrollmentStatus(*in.EnrollmentStatus)
	}
	if in.CompletionDate != nil {
		e.CompletionDate = parseDate(in.CompletionDate)
	}
	if in.Remarks != nil {
		e.Remarks = in.Remarks
	}
	if !e.CompletionValid() {
		return nil, errCompletionBeforeEnrollment
	}

	err = s.repoDB.UpdateEnrollment(ctx, *e)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Enrollment not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update enrollment", "enrollment_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.getEnrollment(ctx, in.ID)
}

func (s *Usecase) EnrollmentDelete(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "EnrollmentDelete")
	defer span.End()

	err := s.repoDB.DeleteEnrollment(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "enrollment to delete not found", "enrollment_id", id)
		return goerror.NewBusiness("Enrollment not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete enrollment", "enrollment_id", id, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

var errCompletionBeforeEnrollment = goerror.NewInvalidInput(nil,
	"completion_date", "The completion date must be a date after or equal to enrollment date.")

// ensureParticipants reports a missing student or course as a field error.
func (s *Usecase) ensureParticipants(ctx context.Context, studentID, courseID int64) error {
	fields := make([]string, 0, 4)

	_, err := s.repoDB.GetStudentByID(ctx, studentID)
	if errors.Is(err, goerror.ErrNotFound) {
		fields = append(fields, "student_id", "The selected student id is invalid.")
	} else if err != nil {
		slog.ErrorContext(ctx, "failed to repo get student by id", "student_id", studentID, "error", err)
		return goerror.NewServer(err)
	}

	_, err = s.repoDB.GetCourseByID(ctx, courseID)
	if errors.Is(err, goerror.ErrNotFound) {
		fields = append(fields, "course_id", "The selected course id is invalid.")
	} else if err != nil {
		slog.ErrorContext(ctx, "failed to repo get course by id", "course_id", courseID, "error", err)
		return goerror.NewServer(err)
	}

	if len(fields) > 0 {
		slog.WarnContext(ctx, "enrollment participants missing", "student_id", studentID, "course_id", courseID)
		return goerror.NewInvalidInput(nil, fields...)
	}

	return nil
}

func (s *Usecase) getEnrollment(ctx context.Context, id int64) (*entity.Enrollment, error) {
	e, err := s.repoDB.GetEnrollmentByID(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "enrollment not found", "enrollment_id", id)
		return nil, goerror.NewBusiness("Enrollment not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get enrollment by id", "enrollment_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	return e, nil
}
