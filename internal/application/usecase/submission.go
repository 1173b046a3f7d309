package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/academia/internal/application/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
)

var errSubmissionNotFound = goerror.NewBusiness("Application not found", goerror.CodeNotFound)

type ListInput struct {
	FormType *string `json:"form_type"`
	Status   *string `json:"status" validate:"omitempty,oneof=new in_review contacted closed"`
	Search   string  `json:"search"`
	Page     int32   `json:"page"`
	Size     int32   `json:"size"`
}

type ListOutput struct {
	Page        int32
	Size        int32
	Total       int64
	Submissions []entity.Submission
}

func (s *Usecase) List(ctx context.Context, in ListInput) (*ListOutput, error) {
	ctx, span := s.startSpan(ctx, "List")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if in.Size <= 0 || in.Size > 100 {
		in.Size = 15 // default limit
	}
	page := max(in.Page, 1)

	f := entity.Filter{FormType: in.FormType, Search: in.Search, Size: in.Size, Offset: (page - 1) * in.Size}
	if in.Status != nil {
		st := entity.Status(*in.Status)
		f.Status = &st
	}

	subs, total, err := s.repoDB.ListSubmissions(ctx, f)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list submissions", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ListOutput{Page: page, Size: in.Size, Total: total, Submissions: subs}, nil
}

// Detail returns a submission and records the first admin view.
func (s *Usecase) Detail(ctx context.Context, id int64) (*entity.Submission, error) {
	ctx, span := s.startSpan(ctx, "Detail")
	defer span.End()

	sub, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if sub.AdminViewedAt == nil {
		now := s.clock.Now()
		if err := s.repoDB.MarkSubmissionViewed(ctx, id, now); err != nil {
			slog.ErrorContext(ctx, "failed to repo mark submission viewed", "submission_id", id, "error", err)
			return nil, goerror.NewServer(err)
		}
		sub.AdminViewedAt = &now
	}

	return sub, nil
}

type UpdateInput struct {
	ID         int64   `json:"-"`
	Status     *string `json:"status" validate:"omitempty,oneof=new in_review contacted closed"`
	AdminNotes *string `json:"admin_notes"`
}

func (s *Usecase) Update(ctx context.Context, in UpdateInput) (*entity.Submission, error) {
	ctx, span := s.startSpan(ctx, "Update")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	sub, err := s.get(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Status != nil {
		sub.Status = entity.Status(*in.Status)
	}
	if in.AdminNotes != nil {
		sub.AdminNotes = in.AdminNotes
	}

	err = s.repoDB.UpdateSubmission(ctx, *sub)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, errSubmissionNotFound
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update submission", "submission_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.get(ctx, in.ID)
}

func (s *Usecase) Delete(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "Delete")
	defer span.End()

	err := s.repoDB.DeleteSubmission(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "submission to delete not found", "submission_id", id)
		return errSubmissionNotFound
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete submission", "submission_id", id, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

func (s *Usecase) get(ctx context.Context, id int64) (*entity.Submission, error) {
	sub, err := s.repoDB.GetSubmissionByID(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "submission not found", "submission_id", id)
		return nil, errSubmissionNotFound
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get submission by id", "submission_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	return sub, nil
}
