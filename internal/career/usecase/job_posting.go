package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/academia/internal/career/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/valueobject"
)

var (
	errSalaryRange  = goerror.NewInvalidInput(nil, "salary_max", "The salary max must be greater than or equal to salary min.")
	errDeadlinePast = goerror.NewInvalidInput(nil, "deadline", "The deadline must be a date after today.")
	errJobNotFound  = goerror.NewBusiness("Job posting not found", goerror.CodeNotFound)
)

type ListInput struct {
	IsActive *bool
	Page     int32
	Size     int32
}

type JobPostingListOutput struct {
	Page  int32
	Size  int32
	Total int64
	Jobs  []entity.JobPosting
}

func (s *Usecase) JobPostingList(ctx context.Context, in ListInput) (*JobPostingListOutput, error) {
	ctx, span := s.startSpan(ctx, "JobPostingList")
	defer span.End()

	f, page, size := filterOf(in.IsActive, in.Page, in.Size)

	jobs, total, err := s.repoDB.ListJobPostings(ctx, f)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list job postings", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &JobPostingListOutput{Page: page, Size: size, Total: total, Jobs: jobs}, nil
}

func (s *Usecase) JobPostingDetail(ctx context.Context, id int64) (*entity.JobPosting, error) {
	ctx, span := s.startSpan(ctx, "JobPostingDetail")
	defer span.End()

	return s.getJobPosting(ctx, id)
}

type JobPostingCreateInput struct {
	Title          string             `json:"title" validate:"required,max=255"`
	Department     string             `json:"department" validate:"required,max=255"`
	Description    string             `json:"description" validate:"required"`
	Requirements   *string            `json:"requirements"`
	Location       string             `json:"location" validate:"required,max=255"`
	EmploymentType string             `json:"employment_type" validate:"required,oneof=full-time part-time contract"`
	SalaryMin      *valueobject.Money `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax      *valueobject.Money `json:"salary_max" validate:"omitempty,min=0"`
	Deadline       *string            `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	Order          *int32             `json:"order" validate:"omitempty,min=0"`
	IsActive       *bool              `json:"is_active"`
}

func (s *Usecase) JobPostingCreate(ctx context.Context, in JobPostingCreateInput) (*entity.JobPosting, error) {
	ctx, span := s.startSpan(ctx, "JobPostingCreate")
	defer span.End()

	in.Title = strings.TrimSpace(in.Title)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	j := entity.JobPosting{
		ID:             s.uid.Generate(),
		Title:          in.Title,
		Department:     &in.Department,
		Description:    &in.Description,
		Requirements:   in.Requirements,
		Location:       &in.Location,
		EmploymentType: employmentOf(&in.EmploymentType),
		SalaryMin:      in.SalaryMin,
		SalaryMax:      in.SalaryMax,
		IsActive:       in.IsActive == nil || *in.IsActive,
	}
	if in.Order != nil {
		j.Order = *in.Order
	}
	if in.Deadline != nil {
		d, ok := s.futureDate(*in.Deadline)
		if !ok {
			return nil, errDeadlinePast
		}
		j.Deadline = d
	}
	if !j.SalaryRangeValid() {
		return nil, errSalaryRange
	}

	if err := s.repoDB.CreateJobPosting(ctx, j); err != nil {
		slog.ErrorContext(ctx, "failed to repo create job posting", "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.getJobPosting(ctx, j.ID)
}

type JobPostingUpdateInput struct {
	ID             int64              `json:"-"`
	Title          *string            `json:"title" validate:"omitempty,min=1,max=255"`
	Department     *string            `json:"department" validate:"omitempty,min=1,max=255"`
	Description    *string            `json:"description" validate:"omitempty,min=1"`
	Requirements   *string            `json:"requirements"`
	Location       *string            `json:"location" validate:"omitempty,min=1,max=255"`
	EmploymentType *string            `json:"employment_type" validate:"omitempty,oneof=full-time part-time contract"`
	SalaryMin      *valueobject.Money `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax      *valueobject.Money `json:"salary_max" validate:"omitempty,min=0"`
	Deadline       *string            `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	Order          *int32             `json:"order" validate:"omitempty,min=0"`
	IsActive       *bool              `json:"is_active"`
}

func (s *Usecase) JobPostingUpdate(ctx context.Context, in JobPostingUpdateInput) (*entity.JobPosting, error) {
	ctx, span := s.startSpan(ctx, "JobPostingUpdate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	j, err := s.getJobPosting(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		j.Title = strings.TrimSpace(*in.Title)
	}
	if in.Department != nil {
		j.Department = in.Department
	}
	if in.Description != nil {
		j.Description = in.Description
	}
	if in.Requirements != nil {
		j.Requirements = in.Requirements
	}
	if in.Location != nil {
		j.Location = in.Location
	}
	if in.EmploymentType != nil {
		j.EmploymentType = employmentOf(in.EmploymentType)
	}
	if in.SalaryMin != nil {
		j.SalaryMin = in.SalaryMin
	}
	if in.SalaryMax != nil {
		j.SalaryMax = in.SalaryMax
	}
	if in.Deadline != nil {
		d, ok := s.futureDate(*in.Deadline)
		if !ok {
			return nil, errDeadlinePast
		}
		j.Deadline = d
	}
	if in.Order != nil {
		j.Order = *in.Order
	}
	if in.IsActive != nil {
		j.IsActive = *in.IsActive
	}
	if !j.SalaryRangeValid() {
		return nil, errSalaryRange
	}

	err = s.repoDB.UpdateJobPosting(ctx, *j)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, errJobNotFound
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update job posting", "job_posting_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.getJobPosting(ctx, in.ID)
}

func (s *Usecase) JobPostingDelete(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "JobPostingDelete")
	defer span.End()

	err := s.repoDB.DeleteJobPosting(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "job posting to delete not found", "job_posting_id", id)
		return errJobNotFound
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete job posting", "job_posting_id", id, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

func (s *Usecase) getJobPosting(ctx context.Context, id int64) (*entity.JobPosting, error) {
	j, err := s.repoDB.GetJobPostingByID(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "job posting not found", "job_posting_id", id)
		return nil, errJobNotFound
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get job posting by id", "job_posting_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	return j, nil
}
