package inbound

import (
	"net/http"
	"time"

	"github.com/shandysiswandi/academia/internal/admin/entity"
	"github.com/shandysiswandi/academia/internal/admin/usecase"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginVerifyRequest struct {
	OtpToken string `json:"otp_token"`
	Code     string `json:"code"`
}

type PasswordForgotRequest struct {
	Email string `json:"email"`
}

type PasswordResetRequest struct {
	OtpToken             string `json:"otp_token"`
	Code                 string `json:"code"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type PasswordChangeRequest struct {
	OtpToken             string `json:"otp_token"`
	Code                 string `json:"code"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type EmailChangeOTPRequest struct {
	NewEmail string `json:"new_email"`
}

type EmailChangeRequest struct {
	OtpToken string `json:"otp_token"`
	Code     string `json:"code"`
	NewEmail string `json:"new_email"`
}

type AdminCreateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type AdminUpdateRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type AdminSummary struct {
	ID    int64  `json:"id,string"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AdminResponse struct {
	ID        int64     `json:"id,string"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toAdminResponse(a entity.Admin) AdminResponse {
	return AdminResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Role:      a.Role.String(),
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

type TokenResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	ExpiresIn int64        `json:"expires_in"`
	Admin     AdminSummary `json:"admin"`
	// message
	msg string
}

func (r TokenResponse) Message() string {
	return r.msg
}

func newTokenResponse(t *usecase.AuthToken, msg string) TokenResponse {
	return TokenResponse{
		Token:     t.Token,
		TokenType: t.TokenType,
		ExpiresIn: t.ExpiresIn,
		Admin: AdminSummary{
			ID:    t.Admin.ID,
			Name:  t.Admin.Name,
			Email: t.Admin.Email,
			Role:  t.Admin.Role.String(),
		},
		msg: msg,
	}
}

type LoginOTPResponse struct {
	OtpRequired bool   `json:"otp_required"`
	OtpToken    string `json:"otp_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (LoginOTPResponse) Message() string {
	return "OTP sent to your email"
}

type OTPChallengeResponse struct {
	OtpToken  string `json:"otp_token,omitempty"`
	ExpiresIn int64  `json:"expires_in,omitempty"`
	// message
	msg string
}

func (r OTPChallengeResponse) Message() string {
	return r.msg
}

type AdminsResponse struct {
	Admins []AdminResponse `json:"admins"`
	// meta
	total int64
	size  int32
	page  int32
}

func (r AdminsResponse) Meta() map[string]any {
	return map[string]any{
		"total": r.total,
		"size":  r.size,
		"page":  r.page,
	}
}

type AdminCreateResponse struct {
	AdminResponse
}

func (AdminCreateResponse) StatusCode() int {
	return http.StatusCreated
}

func (AdminCreateResponse) Message() string {
	return "Admin created successfully"
}

type AdminUpdateResponse struct {
	AdminResponse
}

func (AdminUpdateResponse) Message() string {
	return "Admin updated successfully"
}

type AdminDeleteResponse struct{}

func (AdminDeleteResponse) Message() string {
	return "Admin deleted successfully"
}
