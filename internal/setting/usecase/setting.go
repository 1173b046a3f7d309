package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/setting/entity"
)

type SettingListInput struct {
	Group    *string
	IsPublic *bool
	Page     int32
	Size     int32
}

type SettingListOutput struct {
	Page     int32
	Size     int32
	Total    int64
	Settings []entity.Setting
}

func (s *Usecase) SettingList(ctx context.Context, in SettingListInput) (*SettingListOutput, error) {
	ctx, span := s.startSpan(ctx, "SettingList")
	defer span.End()

	if in.Size <= 0 || in.Size > 100 {
		in.Size = 50 // default limit
	}
	page := max(in.Page, 1)

	items, total, err := s.repoDB.ListSettings(ctx, entity.SettingFilter{
		Group:    in.Group,
		IsPublic: in.IsPublic,
		Size:     in.Size,
		Offset:   (page - 1) * in.Size,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list settings", "error", err)
		return nil, goerror.NewServer(err)
	}

	for i := range items {
		items[i] = items[i].Masked()
	}

	return &SettingListOutput{Page: page, Size: in.Size, Total: total, Settings: items}, nil
}

func (s *Usecase) SettingDetail(ctx context.Context, id int64) (*entity.Setting, error) {
	ctx, span := s.startSpan(ctx, "SettingDetail")
	defer span.End()

	st, err := s.getSetting(ctx, id)
	if err != nil {
		return nil, err
	}

	s.reveal(ctx, st)
	return st, nil
}

func (s *Usecase) SettingByKey(ctx context.Context, key string) (*entity.Setting, error) {
	ctx, span := s.startSpan(ctx, "SettingByKey")
	defer span.End()

	st, err := s.repoDB.GetSettingByKey(ctx, key)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "setting not found", "key", key)
		return nil, goerror.NewBusiness("Setting not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get setting by key", "key", key, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.reveal(ctx, st)
	return st, nil
}

func (s *Usecase) SettingsByGroup(ctx context.Context, group string) ([]entity.Setting, error) {
	ctx, span := s.startSpan(ctx, "SettingsByGroup")
	defer span.End()

	return s.listGroup(ctx, group, false)
}

// PublicSettingsByGroup lists only the public settings of a group.
func (s *Usecase) PublicSettingsByGroup(ctx context.Context, group string) ([]entity.Setting, error) {
	ctx, span := s.startSpan(ctx, "PublicSettingsByGroup")
	defer span.End()

	return s.listGroup(ctx, group, true)
}

func (s *Usecase) listGroup(ctx context.Context, group string, publicOnly bool) ([]entity.Setting, error) {
	items, err := s.repoDB.ListSettingsByGroup(ctx, group, publicOnly)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list settings by group", "group", group, "error", err)
		return nil, goerror.NewServer(err)
	}

	for i := range items {
		items[i] = items[i].Masked()
	}

	return items, nil
}

type SettingCreateInput struct {
	Key         string  `json:"key" validate:"required,max=255"`
	Value       *string `json:"value"`
	Type        string  `json:"type" validate:"required,oneof=text number boolean json"`
	Group       string  `json:"group" validate:"required,max=255"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"is_public"`
}

func (s *Usecase) SettingCreate(ctx context.Context, in SettingCreateInput) (*entity.Setting, error) {
	ctx, span := s.startSpan(ctx, "SettingCreate")
	defer span.End()

	in.Key = strings.TrimSpace(in.Key)
	in.Group = strings.TrimSpace(in.Group)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	stored, err := s.seal(in.Key, in.Value)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encrypt setting value", "key", in.Key, "error", err)
		return nil, goerror.NewServer(err)
	}

	st := entity.Setting{
		ID:          s.uid.Generate(),
		Key:         in.Key,
		Value:       stored,
		Type:        entity.Type(in.Type),
		Group:       in.Group,
		Description: in.Description,
		IsPublic:    in.IsPublic != nil && *in.IsPublic,
	}

	err = s.repoDB.CreateSetting(ctx, st)
	if errors.Is(err, goerror.ErrConflict) {
		slog.WarnContext(ctx, "setting key already exists", "key", in.Key)
		return nil, goerror.NewBusiness("The key has already been taken", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create setting", "key", in.Key, "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.SettingDetail(ctx, st.ID)
}

type SettingUpdateInput struct {
	ID          int64   `json:"-"`
	Key         *string `json:"key" validate:"omitempty,min=1,max=255"`
	Value       *string `json:"value"`
	Type        *string `json:"type" validate:"omitempty,oneof=text number boolean json"`
	Group       *string `json:"group" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"is_public"`
}

func (s *Usecase) SettingUpdate(ctx context.Context, in SettingUpdateInput) (*entity.Setting, error) {
	ctx, span := s.startSpan(ctx, "SettingUpdate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	st, err := s.getSetting(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	// the key is bound into the ciphertext, so work on the plaintext
	s.reveal(ctx, st)
	if in.Key != nil {
		st.Key = strings.TrimSpace(*in.Key)
	}
	if in.Value != nil {
		st.Value = in.Value
	}
	if in.Type != nil {
		st.Type = entity.Type(*in.Type)
	}
	if in.Group != nil {
		st.Group = strings.TrimSpace(*in.Group)
	}
	if in.Description != nil {
		st.Description = in.Description
	}
	if in.IsPublic != nil {
		st.IsPublic = *in.IsPublic
	}

	if st.Value, err = s.seal(st.Key, st.Value); err != nil {
		slog.ErrorContext(ctx, "failed to encrypt setting value", "key", st.Key, "error", err)
		return nil, goerror.NewServer(err)
	}

	err = s.repoDB.UpdateSetting(ctx, *st)
	if errors.Is(err, goerror.ErrConflict) {
		slog.WarnContext(ctx, "setting key already exists", "key", st.Key)
		return nil, goerror.NewBusiness("The key has already been taken", goerror.CodeConflict)
	}
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Setting not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update setting", "setting_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.SettingDetail(ctx, in.ID)
}

func (s *Usecase) SettingDelete(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "SettingDelete")
	defer span.End()

	err := s.repoDB.DeleteSetting(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "setting to delete not found", "setting_id", id)
		return goerror.NewBusiness("Setting not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete setting", "setting_id", id, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

func (s *Usecase) getSetting(ctx context.Context, id int64) (*entity.Setting, error) {
	st, err := s.repoDB.GetSettingByID(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "setting not found", "setting_id", id)
		return nil, goerror.NewBusiness("Setting not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get setting by id", "setting_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	return st, nil
}
