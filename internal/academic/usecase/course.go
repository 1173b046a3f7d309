package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/academia/internal/academic/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/valueobject"
)

type CourseListInput struct {
	Search   string
	Level    *string `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	IsActive *bool
	Page     int32
	Size     int32
}

type CourseListOutput struct {
	Page    int32
	Size    int32
	Total   int64
	Courses []entity.Course
}

func (s *Usecase) CourseList(ctx context.Context, in CourseListInput) (*CourseListOutput, error) {
	ctx, span := s.startSpan(ctx, "CourseList")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	page, size := pageOf(in.Page, in.Size, 15)
	filter := entity.CourseFilter{
		Search:   strings.TrimSpace(in.Search),
		IsActive: in.IsActive,
		Size:     size,
		Offset:   (page - 1) * size,
	}
	if in.Level != nil {
		lvl := entity.Level(*in.Level)
		filter.Level = &lvl
	}

	items, total, err := s.repoDB.ListCourses(ctx, filter)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list courses", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &CourseListOutput{Page: page, Size: size, Total: total, Courses: items}, nil
}

func (s *Usecase) CourseDetail(ctx context.Context, id int64) (*entity.Course, error) {
	ctx, span := s.startSpan(ctx, "CourseDetail")
	defer span.End()

	return s.getCourse(ctx, id)
}

type CourseCreateInput struct {
	Title         string            `json:"title" validate:"required,max=255"`
	Description   *string           `json:"description"`
	Code          string            `json:"code" validate:"required,max=50"`
	DurationHours int32             `json:"duration_hours" validate:"required,min=1"`
	Price         valueobject.Money `json:"price" validate:"min=0"`
	Level         string            `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Instructor    *string           `json:"instructor" validate:"omitempty,max=255"`
	IsActive      *bool             `json:"is_active"`
}

func (s *Usecase) CourseCreate(ctx context.Context, in CourseCreateInput) (*entity.Course, error) {
	ctx, span := s.startSpan(ctx, "CourseCreate")
	defer span.End()

	in.Title = strings.TrimSpace(in.Title)
	in.Code = strings.TrimSpace(in.Code)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	c := entity.Course{
		ID:            s.uid.Generate(),
		Title:         in.Title,
		Description:   in.Description,
		Code:          in.Code,
		DurationHours: in.DurationHours,
		Price:         in.Price,
		Level:         entity.LevelBeginner,
		Instructor:    in.Instructor,
		IsActive:      in.IsActive == nil || *in.IsActive,
	}
	if in.Level != "" {
		c.Level = entity.Level(in.Level)
	}

	err := s.repoDB.CreateCourse(ctx, c)
	if errors.Is(err, goerror.ErrConflict) {
		slog.WarnContext(ctx, "course code already exists", "code", c.Code)
		return nil, goerror.NewBusiness("The code has already been taken", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create course", "code", c.Code, "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.getCourse(ctx, c.ID)
}

type CourseUpdateInput struct {
	ID            int64              `json:"-"`
	Title         *string            `json:"title" validate:"omitempty,min=1,max=255"`
	Description   *string            `json:"description"`
	Code          *string            `json:"code" validate:"omitempty,min=1,max=50"`
	DurationHours *int32             `json:"duration_hours" validate:"omitempty,min=1"`
	Price         *valueobject.Money `json:"price" validate:"omitempty,min=0"`
	Level         *string            `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Instructor    *string            `json:"instructor" validate:"omitempty,max=255"`
	IsActive      *bool              `json:"is_active"`
}

func (s *Usecase) CourseUpdate(ctx context.Context, in CourseUpdateInput) (*entity.Course, error) {
	ctx, span := s.startSpan(ctx, "CourseUpdate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	c, err := s.getCourse(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		c.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		c.Description = in.Description
	}
	if in.Code != nil {
		c.Code = strings.TrimSpace(*in.Code)
	}
	if in.DurationHours != nil {
		c.DurationHours = *in.DurationHours
	}
	if in.Price != nil {
		c.Price = *in.Price
	}
	if in.Level != nil {
		c.Level = entity.Level(*in.Level)
	}
	if in.Instructor != nil {
		c.Instructor = in.Instructor
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}

	err = s.repoDB.UpdateCourse(ctx, *c)
	if errors.Is(err, goerror.ErrConflict) {
		slog.WarnContext(ctx, "course code already exists", "code", c.Code)
		return nil, goerror.NewBusiness("The code has already been taken", goerror.CodeConflict)
	}
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Course not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update course", "course_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.getCourse(ctx, in.ID)
}

func (s *Usecase) CourseDelete(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "CourseDelete")
	defer span.End()

	err := s.repoDB.DeleteCourse(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "course to delete not found", "course_id", id)
		return goerror.NewBusiness("Course not found", goerror.CodeNotFound)
	}
	if errors.Is(err, goerror.ErrReferenced) {
		slog.WarnContext(ctx, "course still has enrollments", "course_id", id)
		return goerror.NewBusiness("Cannot delete course with existing enrollments", goerror.CodeInvalidInput)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete course", "course_id", id, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

type CourseEnrollmentsInput struct {
	CourseID int64
	Page     int32
	Size     int32
}

func (s *Usecase) CourseEnrollments(ctx context.Context, in CourseEnrollmentsInput) (*EnrollmentListOutput, error) {
	ctx, span := s.startSpan(ctx, "CourseEnrollments")
	defer span.End()

	if _, err := s.getCourse(ctx, in.CourseID); err != nil {
		return nil, err
	}

	return s.listEnrollments(ctx, entity.EnrollmentFilter{CourseID: in.CourseID}, in.Page, in.Size)
}

func (s *Usecase) getCourse(ctx context.Context, id int64) (*entity.Course, error) {
	c, err := s.repoDB.GetCourseByID(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "course not found", "course_id", id)
		return nil, goerror.NewBusiness("Course not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get course by id", "course_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	return c, nil
}
