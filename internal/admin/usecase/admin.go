package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/academia/internal/admin/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
)

func (s *Usecase) Me(ctx context.Context) (*entity.Admin, error) {
	ctx, span := s.startSpan(ctx, "Me")
	defer span.End()

	return s.currentAdmin(ctx)
}

type AdminListInput struct {
	Page int32
	Size int32
}

type AdminListOutput struct {
	Page   int32
	Size   int32
	Total  int64
	Admins []entity.Admin
}

func (s *Usecase) AdminList(ctx context.Context, in AdminListInput) (*AdminListOutput, error) {
	ctx, span := s.startSpan(ctx, "AdminList")
	defer span.End()

	if in.Size <= 0 || in.Size > 100 {
		in.Size = 10 // default limit
	}
	page := max(in.Page, 1)

	admins, total, err := s.repoDB.ListAdmins(ctx, entity.AdminListFilter{
		Size:   in.Size,
		Offset: (page - 1) * in.Size,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list admins", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &AdminListOutput{Page: page, Size: in.Size, Total: total, Admins: admins}, nil
}

func (s *Usecase) AdminDetail(ctx context.Context, id int64) (*entity.Admin, error) {
	ctx, span := s.startSpan(ctx, "AdminDetail")
	defer span.End()

	return s.getAdmin(ctx, id)
}

type AdminCreateInput struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,password"`
	Role     string `json:"role" validate:"omitempty,oneof=admin super_admin"`
}

func (s *Usecase) AdminCreate(ctx context.Context, in AdminCreateInput) (*entity.Admin, error) {
	ctx, span := s.startSpan(ctx, "AdminCreate")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	role, err := entity.ParseRole(in.Role)
	if err != nil {
		return nil, goerror.NewInvalidInput(nil, "role", "The selected role is invalid.")
	}

	hashed, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServer(err)
	}

	id := s.uid.Generate()
	err = s.repoDB.CreateAdmin(ctx, entity.NewAdmin{
		ID:       id,
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hashed),
		Role:     role,
	})
	if errors.Is(err, goerror.ErrConflict) {
		slog.WarnContext(ctx, "admin email already registered", "email", in.Email)
		return nil, goerror.NewBusiness("The email has already been taken", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create admin", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.getAdmin(ctx, id)
}

type AdminUpdateInput struct {
	ID       int64   `json:"-"`
	Name     *string `json:"name" validate:"omitempty,min=1,max=255"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Password *string `json:"password" validate:"omitempty,password"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin super_admin"`
	IsActive *bool   `json:"is_active"`
}

func (s *Usecase) AdminUpdate(ctx context.Context, in AdminUpdateInput) (*entity.Admin, error) {
	ctx, span := s.startSpan(ctx, "AdminUpdate")
	defer span.End()

	if in.Email != nil {
		e := strings.TrimSpace(strings.ToLower(*in.Email))
		in.Email = &e
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	clm, err := s.requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	if in.IsActive != nil && !*in.IsActive && clm.AdminID() == in.ID {
		return nil, goerror.NewBusiness("You cannot deactivate your own account", goerror.CodeInvalidInput)
	}

	if _, err := s.getAdmin(ctx, in.ID); err != nil {
		return nil, err
	}

	patch := entity.PatchAdmin{ID: in.ID, Name: in.Name, Email: in.Email, IsActive: in.IsActive}
	if in.Role != nil {
		r := entity.Role(*in.Role)
		patch.Role = &r
	}
	if in.Password != nil {
		hashed, err := s.bcrypt.Hash(*in.Password)
		if err != nil {
			slog.ErrorContext(ctx, "failed to hash password", "admin_id", in.ID, "error", err)
			return nil, goerror.NewServer(err)
		}
		h := string(hashed)
		patch.Password = &h
	}

	err = s.repoDB.PatchAdmin(ctx, patch)
	if errors.Is(err, goerror.ErrConflict) {
		slog.WarnContext(ctx, "admin email already registered", "admin_id", in.ID)
		return nil, goerror.NewBusiness("The email has already been taken", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo patch admin", "admin_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.getAdmin(ctx, in.ID)
}

func (s *Usecase) AdminDelete(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "AdminDelete")
	defer span.End()

	clm, err := s.requireAuth(ctx)
	if err != nil {
		return err
	}

	if clm.AdminID() == id {
		return goerror.NewBusiness("You cannot delete your own account", goerror.CodeInvalidInput)
	}

	err = s.repoDB.DeleteAdmin(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "admin to delete not found", "admin_id", id)
		return goerror.NewBusiness("Admin not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete admin", "admin_id", id, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

func (s *Usecase) getAdmin(ctx context.Context, id int64) (*entity.Admin, error) {
	admin, err := s.repoDB.GetAdminByID(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "admin not found", "admin_id", id)
		return nil, goerror.NewBusiness("Admin not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get admin by id", "admin_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	return admin, nil
}
