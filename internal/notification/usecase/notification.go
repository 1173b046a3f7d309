package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/academia/internal/notification/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/valueobject"
)

var errNotificationNotFound = goerror.NewBusiness("Notification not found", goerror.CodeNotFound)

type ListInput struct {
	Unread bool  `json:"unread"`
	Page   int32 `json:"page"`
	Size   int32 `json:"size"`
}

type ListOutput struct {
	Page          int32
	Size          int32
	Total         int64
	Notifications []entity.Notification
}

// List returns the current admin's notifications, newest first.
func (s *Usecase) List(ctx context.Context, in ListInput) (*ListOutput, error) {
	ctx, span := s.startSpan(ctx, "List")
	defer span.End()

	adminID, err := s.requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	if in.Size <= 0 || in.Size > 100 {
		in.Size = 20 // default limit
	}
	page := max(in.Page, 1)

	items, total, err := s.repoDB.ListNotifications(ctx, entity.Filter{
		RecipientID: adminID,
		UnreadOnly:  in.Unread,
		Size:        in.Size,
		Offset:      (page - 1) * in.Size,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list notifications", "admin_id", adminID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ListOutput{Page: page, Size: in.Size, Total: total, Notifications: items}, nil
}

type CreateInput struct {
	Title       string         `json:"title" validate:"required,max=255"`
	Message     string         `json:"message" validate:"required"`
	Type        string         `json:"type" validate:"omitempty,oneof=info warning error success"`
	RecipientID *int64         `json:"recipient_id" validate:"omitempty,gt=0"`
	Data        map[string]any `json:"data"`
}

// Create stores a notification for RecipientID, or for the caller when it is nil.
func (s *Usecase) Create(ctx context.Context, in CreateInput) (*entity.Notification, error) {
	ctx, span := s.startSpan(ctx, "Create")
	defer span.End()

	adminID, err := s.requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Message = strings.TrimSpace(in.Message)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	recipient := adminID
	if in.RecipientID != nil && *in.RecipientID != adminID {
		ok, err := s.repoDB.AdminExists(ctx, *in.RecipientID)
		if err != nil {
			slog.ErrorContext(ctx, "failed to repo check recipient", "recipient_id", *in.RecipientID, "error", err)
			return nil, goerror.NewServer(err)
		}
		if !ok {
			return nil, goerror.NewInvalidInput(nil, "recipient_id", "The selected recipient id is invalid.")
		}
		recipient = *in.RecipientID
	}

	typ, _ := entity.ParseType(in.Type)
	n := entity.Notification{
		ID:          s.uid.Generate(),
		RecipientID: recipient,
		Title:       in.Title,
		Message:     in.Message,
		Type:        typ,
		Data:        valueobject.JSONMap(in.Data),
		CreatedAt:   s.clock.Now(),
	}
	if n.Data == nil {
		n.Data = valueobject.JSONMap{}
	}

	if err := s.repoDB.CreateNotifications(ctx, []entity.Notification{n}); err != nil {
		slog.ErrorContext(ctx, "failed to repo create notification", "recipient_id", recipient, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.push(n)

	return &n, nil
}

func (s *Usecase) MarkRead(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "MarkRead")
	defer span.End()

	adminID, err := s.requireAuth(ctx)
	if err != nil {
		return err
	}

	err = s.repoDB.MarkRead(ctx, adminID, id, s.clock.Now())
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "notification to mark read not found", "admin_id", adminID, "notification_id", id)
		return errNotificationNotFound
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo mark notification read", "admin_id", adminID, "notification_id", id, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

func (s *Usecase) MarkAllRead(ctx context.Context) (int64, error) {
	ctx, span := s.startSpan(ctx, "MarkAllRead")
	defer span.End()

	adminID, err := s.requireAuth(ctx)
	if err != nil {
		return 0, err
	}

	n, err := s.repoDB.MarkAllRead(ctx, adminID, s.clock.Now())
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo mark all notifications read", "admin_id", adminID, "error", err)
		return 0, goerror.NewServer(err)
	}

	return n, nil
}

func (s *Usecase) UnreadCount(ctx context.Context) (int64, error) {
	ctx, span := s.startSpan(ctx, "UnreadCount")
	defer span.End()

	adminID, err := s.requireAuth(ctx)
	if err != nil {
		return 0, err
	}

	n, err := s.repoDB.CountUnread(ctx, adminID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo count unread notifications", "admin_id", adminID, "error", err)
		return 0, goerror.NewServer(err)
	}

	return n, nil
}

func (s *Usecase) Delete(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "Delete")
	defer span.End()

	adminID, err := s.requireAuth(ctx)
	if err != nil {
		return err
	}

	err = s.repoDB.DeleteNotification(ctx, adminID, id)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "notification to delete not found", "admin_id", adminID, "notification_id", id)
		return errNotificationNotFound
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete notification", "admin_id", adminID, "notification_id", id, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
