package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/academia/internal/application/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/idempotency"
	"github.com/shandysiswandi/academia/internal/pkg/valueobject"
)

type SubmitInput struct {
	FormType       string         `json:"form_type" validate:"required,max=50"`
	FullName       string         `json:"full_name" validate:"required,max=255"`
	Email          string         `json:"email" validate:"required,email,max=255"`
	Phone          *string        `json:"phone" validate:"omitempty,max=30,phone"`
	Title          *string        `json:"title" validate:"omitempty,max=255"`
	Payload        map[string]any `json:"payload"`
	Message        *string        `json:"message" validate:"omitempty,max=2000"`
	IdempotencyKey string         `json:"-" validate:"omitempty,max=255"`
	IP             string         `json:"-"`
	UserAgent      string         `json:"-"`
}

// Submit stores a public form and announces it. A repeated idempotency key
// is rejected instead of creating a second submission.
func (s *Usecase) Submit(ctx context.Context, in SubmitInput) (int64, error) {
	ctx, span := s.startSpan(ctx, "Submit")
	defer span.End()

	in.FormType = strings.TrimSpace(in.FormType)
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	in.IdempotencyKey = strings.TrimSpace(in.IdempotencyKey)

	if err := s.validator.Validate(in); err != nil {
		return 0, goerror.NewInvalidInput(err)
	}

	if in.IdempotencyKey == "" {
		return s.submit(ctx, in)
	}

	var id int64
	err := s.idempotency.Exec(ctx, "application:"+in.IdempotencyKey, func(ctx context.Context) error {
		var err error
		id, err = s.submit(ctx, in)
		return err
	})
	switch {
	case errors.Is(err, idempotency.ErrAlreadyInProgress):
		slog.WarnContext(ctx, "submission with same idempotency key in progress")
		return 0, goerror.NewBusiness("A submission with this key is already being processed", goerror.CodeConflict)
	case errors.Is(err, idempotency.ErrAlreadyCompleted):
		slog.WarnContext(ctx, "duplicate submission rejected")
		return 0, goerror.NewBusiness("Duplicate submission", goerror.CodeConflict)
	case err != nil && id != 0:
		// stored, only the completed state could not be recorded
		slog.WarnContext(ctx, "failed to record idempotency state", "submission_id", id, "error", err)
	case err != nil:
		var gerr *goerror.Error
		if errors.As(err, &gerr) {
			return 0, gerr
		}
		slog.ErrorContext(ctx, "failed to run idempotent submission", "error", err)
		return 0, goerror.NewServer(err)
	}

	return id, nil
}

func (s *Usecase) submit(ctx context.Context, in SubmitInput) (int64, error) {
	payload := valueobject.JSONMap{}
	for k, v := range in.Payload {
		payload[k] = v
	}
	if in.Message != nil && strings.TrimSpace(*in.Message) != "" {
		payload["message"] = *in.Message
	}

	sub := entity.Submission{
		ID:       s.uid.Generate(),
		FormType: in.FormType,
		FullName: in.FullName,
		Email:    strings.ToLower(in.Email),
		Phone:    in.Phone,
		Title:    in.Title,
		Status:   entity.StatusNew,
		Payload:  payload,
	}
	if in.IP != "" {
		sub.IP = &in.IP
	}
	if in.UserAgent != "" {
		sub.UserAgent = &in.UserAgent
	}

	if err := s.repoDB.CreateSubmission(ctx, sub); err != nil {
		slog.ErrorContext(ctx, "failed to repo create submission", "form_type", sub.FormType, "error", err)
		return 0, goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishSubmitted(ctx, sub); err != nil {
		slog.ErrorContext(ctx, "failed to publish application submitted", "submission_id", sub.ID, "error", err)
	}

	return sub.ID, nil
}
