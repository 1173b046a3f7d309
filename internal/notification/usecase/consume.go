package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/shandysiswandi/academia/internal/notification/entity"
	"github.com/shandysiswandi/academia/internal/notification/outbound/email"
	"github.com/shandysiswandi/academia/internal/pkg/valueobject"
)

type ConsumeApplicationSubmittedInput struct {
	SubmissionID int64  `validate:"required,gt=0"`
	FormType     string `validate:"required"`
	FullName     string `validate:"required"`
	Email        string `validate:"required,email"`
	Phone        string
	Title        string
	Payload      map[string]any
}

// ConsumeApplicationSubmitted notifies every active admin and mails the
// configured recipient. Malformed events are dropped; storage failures are
// returned so the broker can redeliver.
func (s *Usecase) ConsumeApplicationSubmitted(ctx context.Context, in ConsumeApplicationSubmittedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeApplicationSubmitted")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "error", err)
		return nil
	}

	ids, err := s.repoDB.ListActiveAdminIDs(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list active admins", "submission_id", in.SubmissionID, "error", err)
		return err
	}

	now := s.clock.Now()
	ns := make([]entity.Notification, 0, len(ids))
	for _, id := range ids {
		ns = append(ns, entity.Notification{
			ID:          s.uid.Generate(),
			RecipientID: id,
			Title:       "New application received",
			Message:     fmt.Sprintf("%s submitted the %s form", in.FullName, in.FormType),
			Type:        entity.TypeInfo,
			Data: valueobject.JSONMap{
				"submission_id": strconv.FormatInt(in.SubmissionID, 10),
				"form_type":     in.FormType,
			},
			CreatedAt: now,
		})
	}

	if err := s.repoDB.CreateNotifications(ctx, ns); err != nil {
		slog.ErrorContext(ctx, "failed to repo create application notifications", "submission_id", in.SubmissionID, "error", err)
		return err
	}
	s.push(ns...)

	if s.recipient == "" {
		return nil
	}

	err = s.repoMail.SendApplicationNotice(ctx, s.recipient, email.ApplicationNotice{
		SubmissionID: in.SubmissionID,
		FormType:     in.FormType,
		FullName:     in.FullName,
		Email:        in.Email,
		Phone:        in.Phone,
		Title:        in.Title,
		Payload:      in.Payload,
		ReceivedAt:   now,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to send application notice", "submission_id", in.SubmissionID, "error", err)
	}

	return nil
}

type ConsumeCredentialChangedInput struct {
	AdminID int64  `validate:"required,gt=0"`
	Email   string `validate:"required,email"`
	Change  string `validate:"required,oneof=password_reset password_change email_change"`
}

func (s *Usecase) ConsumeCredentialChanged(ctx context.Context, in ConsumeCredentialChangedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeCredentialChanged")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "error", err)
		return nil
	}

	n := entity.Notification{
		ID:          s.uid.Generate(),
		RecipientID: in.AdminID,
		Type:        entity.TypeWarning,
		Data:        valueobject.JSONMap{"change": in.Change},
		CreatedAt:   s.clock.Now(),
	}
	switch in.Change {
	case "password_reset":
		n.Title = "Password reset"
		n.Message = "Your password was reset with a one-time code. Contact a super admin if this was not you."
	case "password_change":
		n.Title = "Password changed"
		n.Message = "Your account password was changed. Contact a super admin if this was not you."
	default:
		n.Title = "Email changed"
		n.Message = "Your sign-in email is no longer " + in.Email + "."
	}

	if err := s.repoDB.CreateNotifications(ctx, []entity.Notification{n}); err != nil {
		slog.ErrorContext(ctx, "failed to repo create credential notification", "admin_id", in.AdminID, "error", err)
		return err
	}
	s.push(n)

	return nil
}
