package inbound

import (
	"context"

	"github.com/shandysiswandi/academia/internal/admin/entity"
	"github.com/shandysiswandi/academia/internal/admin/usecase"
	"github.com/shandysiswandi/academia/internal/pkg/router"
)

type uc interface {
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	LoginVerify(ctx context.Context, in usecase.LoginVerifyInput) (*usecase.AuthToken, error)

	PasswordForgot(ctx context.Context, in usecase.PasswordForgotInput) (*usecase.OTPChallenge, error)
	PasswordReset(ctx context.Context, in usecase.PasswordResetInput) (*usecase.AuthToken, error)
	PasswordChangeRequest(ctx context.Context, in usecase.PasswordChangeRequestInput) (*usecase.OTPChallenge, error)
	PasswordChange(ctx context.Context, in usecase.PasswordChangeInput) (*usecase.AuthToken, error)

	EmailChangeRequest(ctx context.Context, in usecase.EmailChangeRequestInput) (*usecase.OTPChallenge, error)
	EmailChange(ctx context.Context, in usecase.EmailChangeInput) (*usecase.AuthToken, error)

	Me(ctx context.Context) (*entity.Admin, error)

	AdminList(ctx context.Context, in usecase.AdminListInput) (*usecase.AdminListOutput, error)
	AdminDetail(ctx context.Context, id int64) (*entity.Admin, error)
	AdminCreate(ctx context.Context, in usecase.AdminCreateInput) (*entity.Admin, error)
	AdminUpdate(ctx context.Context, in usecase.AdminUpdateInput) (*entity.Admin, error)
	AdminDelete(ctx context.Context, id int64) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Authentication
	r.POST("/api/v1/auth/login", end.Login)
	r.POST("/api/v1/auth/login/verify", end.LoginVerify)
	r.POST("/api/v1/auth/password/forgot", end.PasswordForgot)
	r.POST("/api/v1/auth/password/reset", end.PasswordReset)

	// Own account (need authenticated)
	r.GET("/api/v1/auth/me", end.Me)
	r.POST("/api/v1/auth/password/change/request-otp", end.PasswordChangeRequest)
	r.POST("/api/v1/auth/password/change", end.PasswordChange)
	r.POST("/api/v1/auth/email/change/request-otp", end.EmailChangeRequest)
	r.POST("/api/v1/auth/email/change", end.EmailChange)

	// Admin management (need authenticated & authorization)
	r.GET("/api/v1/admins", end.AdminList, r.Authorize("admins", "read"))
	r.GET("/api/v1/admins/:id", end.AdminDetail, r.Authorize("admins", "read"))
	r.POST("/api/v1/admins", end.AdminCreate, r.Authorize("admins", "create"))
	r.PUT("/api/v1/admins/:id", end.AdminUpdate, r.Authorize("admins", "update"))
	r.DELETE("/api/v1/admins/:id", end.AdminDelete, r.Authorize("admins", "delete"))
}
