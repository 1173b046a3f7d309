package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/academia/internal/academic/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
)

type StudentListInput struct {
	Search   string
	IsActive *bool
	Page     int32
	Size     int32
}

type StudentListOutput struct {
	Page     int32
	Size     int32
	Total    int64
	Students []entity.Student
}

func (s *Usecase) StudentList(ctx context.Context, in StudentListInput) (*StudentListOutput, error) {
	ctx, span := s.startSpan(ctx, "StudentList")
	defer span.End()

	page, size := pageOf(in.Page, in.Size, 15)

	items, total, err := s.repoDB.ListStudents(ctx, entity.StudentFilter{
		Search:   strings.TrimSpace(in.Search),
		IsActive: in.IsActive,
		Size:     size,
		Offset:   (page - 1) * size,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list students", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &StudentListOutput{Page: page, Size: size, Total: total, Students: items}, nil
}

func (s *Usecase) StudentDetail(ctx context.Context, id int64) (*entity.Student, error) {
	ctx, span := s.startSpan(ctx, "StudentDetail")
	defer span.End()

	return s.getStudent(ctx, id)
}

type StudentCreateInput struct {
	FirstName      string  `json:"first_name" validate:"required,max=255"`
	LastName       string  `json:"last_name" validate:"required,max=255"`
	Email          string  `json:"email" validate:"required,email,max=255"`
	Phone          *string `json:"phone" validate:"omitempty,max=20,phone"`
	DateOfBirth    *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Address        *string `json:"address" validate:"omitempty,max=500"`
	City           *string `json:"city" validate:"omitempty,max=100"`
	Country        *string `json:"country" validate:"omitempty,max=100"`
	EducationLevel *string `json:"education_level" validate:"omitempty,max=100"`
	IsActive       *bool   `json:"is_active"`
}

func (s *Usecase) StudentCreate(ctx context.Context, in StudentCreateInput) (*entity.Student, error) {
	ctx, span := s.startSpan(ctx, "StudentCreate")
	defer span.End()

	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	st := entity.Student{
		ID:             s.uid.Generate(),
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		Phone:          in.Phone,
		DateOfBirth:    parseDate(in.DateOfBirth),
		Address:        in.Address,
		City:           in.City,
		Country:        in.Country,
		EducationLevel: in.EducationLevel,
		IsActive:       in.IsActive == nil || *in.IsActive,
	}

	err := s.repoDB.CreateStudent(ctx, st)
	if errors.Is(err, goerror.ErrConflict) {
		slog.WarnContext(ctx, "student email already exists")
		return nil, goerror.NewBusiness("The email has already been taken", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create student", "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.getStudent(ctx, st.ID)
}

type StudentUpdateInput struct {
	ID             int64   `json:"-"`
	FirstName      *string `json:"first_name" validate:"omitempty,min=1,max=255"`
	LastName       *string `json:"last_name" validate:"omitempty,min=1,max=255"`
	Email          *string `json:"email" validate:"omitempty,email,max=255"`
	Phone          *string `json:"phone" validate:"omitempty,max=20,phone"`
	DateOfBirth    *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Address        *string `json:"address" validate:"omitempty,max=500"`
	City           *string `json:"city" validate:"omitempty,max=100"`
	Country        *string `json:"country" validate:"omitempty,max=100"`
	EducationLevel *string `json:"education_level" validate:"omitempty,max=100"`
	IsActive       *bool   `json:"is_active"`
}

func (s *Usecase) StudentUpdate(ctx context.Context, in StudentUpdateInput) (*entity.Student, error) {
	ctx, span := s.startSpan(ctx, "StudentUpdate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	st, err := s.getStudent(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		st.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		st.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Email != nil {
		st.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Phone != nil {
		st.Phone = in.Phone
	}
	if in.DateOfBirth != nil {
		st.DateOfBirth = parseDate(in.DateOfBirth)
	}
	if in.Address != nil {
		st.Address = in.Address
	}
	if in.City != nil {
		st.City = in.City
	}
	if in.Country != nil {
		st.Country = in.Country
	}
	if in.EducationLevel != nil {
		st.EducationLevel = in.EducationLevel
	}
	if in.IsActive != nil {
		st.IsActive = *in.IsActive
	}

	err = s.repoDB.UpdateStudent(ctx, *st)
	if errors.Is(err, goerror.ErrConflict) {
		slog.WarnContext(ctx, "student email already exists", "student_id", in.ID)
		return nil, goerror.NewBusiness("The email has already been taken", goerror.CodeConflict)
	}
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Student not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update student", "student_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.getStudent(ctx, in.ID)
}

// StudentDelete removes the student and then its stored resume. A failed
// object delete is logged and does not fail the request.
func (s *Usecase) StudentDelete(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "StudentDelete")
	defer span.End()

	resume, err := s.repoDB.DeleteStudent(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "student to delete not found", "student_id", id)
		return goerror.NewBusiness("Student not found", goerror.CodeNotFound)
	}
	if errors.Is(err, goerror.ErrReferenced) {
		slog.WarnContext(ctx, "student still has enrollments", "student_id", id)
		return goerror.NewBusiness("Cannot delete student with existing enrollments", goerror.CodeInvalidInput)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete student", "student_id", id, "error", err)
		return goerror.NewServer(err)
	}

	if resume != nil {
		if err := s.repoFile.DeleteResume(ctx, *resume); err != nil {
			slog.WarnContext(ctx, "failed to delete resume of removed student", "student_id", id, "key", *resume, "error", err)
		}
	}

	return nil
}

type StudentEnrollmentsInput struct {
	StudentID int64
	Page      int32
	Size      int32
}

func (s *Usecase) StudentEnrollments(ctx context.Context, in StudentEnrollmentsInput) (*EnrollmentListOutput, error) {
	ctx, span := s.startSpan(ctx, "StudentEnrollments")
	defer span.End()

	if _, err := s.getStudent(ctx, in.StudentID); err != nil {
		return nil, err
	}

	return s.listEnrollments(ctx, entity.EnrollmentFilter{StudentID: in.StudentID}, in.Page, in.Size)
}

func (s *Usecase) getStudent(ctx context.Context, id int64) (*entity.Student, error) {
	st, err := s.repoDB.GetStudentByID(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "student not found", "student_id", id)
		return nil, goerror.NewBusiness("Student not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get student by id", "student_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	return st, nil
}
