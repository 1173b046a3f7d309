package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/academia/internal/career/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
)

var errCareerNotFound = goerror.NewBusiness("Career not found", goerror.CodeNotFound)

type CareerListOutput struct {
	Page    int32
	Size    int32
	Total   int64
	Careers []entity.Career
}

func (s *Usecase) CareerList(ctx context.Context, in ListInput) (*CareerListOutput, error) {
	ctx, span := s.startSpan(ctx, "CareerList")
	defer span.End()

	f, page, size := filterOf(in.IsActive, in.Page, in.Size)

	careers, total, err := s.repoDB.ListCareers(ctx, f)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list careers", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &CareerListOutput{Page: page, Size: size, Total: total, Careers: careers}, nil
}

func (s *Usecase) CareerDetail(ctx context.Context, id int64) (*entity.Career, error) {
	ctx, span := s.startSpan(ctx, "CareerDetail")
	defer span.End()

	return s.getCareer(ctx, id)
}

type CareerCreateInput struct {
	Title          string  `json:"title" validate:"required,max=255"`
	Description    string  `json:"description" validate:"required"`
	Requirements   *string `json:"requirements"`
	Location       string  `json:"location" validate:"required,max=255"`
	EmploymentType string  `json:"employment_type" validate:"required,oneof=full-time part-time contract"`
	Department     *string `json:"department" validate:"omitempty,max=255"`
	ApplyURL       *string `json:"apply_url" validate:"omitempty,url,max=500"`
	Order          *int32  `json:"order" validate:"omitempty,min=0"`
	IsActive       *bool   `json:"is_active"`
}

func (s *Usecase) CareerCreate(ctx context.Context, in CareerCreateInput) (*entity.Career, error) {
	ctx, span := s.startSpan(ctx, "CareerCreate")
	defer span.End()

	in.Title = strings.TrimSpace(in.Title)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	c := entity.Career{
		ID:             s.uid.Generate(),
		Title:          in.Title,
		Description:    &in.Description,
		Requirements:   in.Requirements,
		Location:       &in.Location,
		EmploymentType: employmentOf(&in.EmploymentType),
		Department:     in.Department,
		ApplyURL:       in.ApplyURL,
		IsActive:       in.IsActive == nil || *in.IsActive,
	}
	if in.Order != nil {
		c.Order = *in.Order
	}

	if err := s.repoDB.CreateCareer(ctx, c); err != nil {
		slog.ErrorContext(ctx, "failed to repo create career", "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.getCareer(ctx, c.ID)
}

type CareerUpdateInput struct {
	ID             int64   `json:"-"`
	Title          *string `json:"title" validate:"omitempty,min=1,max=255"`
	Description    *string `json:"description" validate:"omitempty,min=1"`
	Requirements   *string `json:"requirements"`
	Location       *string `json:"location" validate:"omitempty,min=1,max=255"`
	EmploymentType *string `json:"employment_type" validate:"omitempty,oneof=full-time part-time contract"`
	Department     *string `json:"department" validate:"omitempty,max=255"`
	ApplyURL       *string `json:"apply_url" validate:"omitempty,url,max=500"`
	Order          *int32  `json:"order" validate:"omitempty,min=0"`
	IsActive       *bool   `json:"is_active"`
}

func (s *Usecase) CareerUpdate(ctx context.Context, in CareerUpdateInput) (*entity.Career, error) {
	ctx, span := s.startSpan(ctx, "CareerUpdate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	c, err := s.getCareer(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		c.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		c.Description = in.Description
	}
	if in.Requirements != nil {
		c.Requirements = in.Requirements
	}
	if in.Location != nil {
		c.Location = in.Location
	}
	if in.EmploymentType != nil {
		c.EmploymentType = employmentOf(in.EmploymentType)
	}
	if in.Department != nil {
		c.Department = in.Department
	}
	if in.ApplyURL != nil {
		c.ApplyURL = in.ApplyURL
	}
	if in.Order != nil {
		c.Order = *in.Order
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}

	err = s.repoDB.UpdateCareer(ctx, *c)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, errCareerNotFound
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update career", "career_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.getCareer(ctx, in.ID)
}

func (s *Usecase) CareerDelete(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "CareerDelete")
	defer span.End()

	err := s.repoDB.DeleteCareer(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "career to delete not found", "career_id", id)
		return errCareerNotFound
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete career", "career_id", id, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

func (s *Usecase) getCareer(ctx context.Context, id int64) (*entity.Career, error) {
	c, err := s.repoDB.GetCareerByID(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "career not found", "career_id", id)
		return nil, errCareerNotFound
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get career by id", "career_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	return c, nil
}
