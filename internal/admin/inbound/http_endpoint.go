package inbound

import (
	"github.com/shandysiswandi/academia/internal/admin/usecase"
	"github.com/shandysiswandi/academia/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for admin authentication and management.
type HTTPEndpoint struct {
	uc uc
}

// Login checks credentials and returns a token, or an OTP challenge when the
// login OTP step is enabled.
// @Summary Login
// @Description Validates credentials. Returns a bearer token, or an otp_token when a login OTP is required.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} router.successResponse{data=TokenResponse} "Authenticated"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid credentials"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 429 {object} router.errorResponse "Too many OTP requests"
// @Failure 503 {object} router.errorResponse "Unable to send OTP email"
// @Router /api/v1/auth/login [post]
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		IP:       r.ClientIP(),
	})
	if err != nil {
		return nil, err
	}

	if resp.OtpRequired {
		return LoginOTPResponse{
			OtpRequired: true,
			OtpToken:    resp.Challenge.OtpToken,
			ExpiresIn:   resp.Challenge.ExpiresIn,
		}, nil
	}

	return newTokenResponse(resp.Auth, "Login successful"), nil
}

// @Summary Verify login OTP
// @Description Completes a login OTP challenge and returns a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginVerifyRequest true "Login OTP payload"
// @Success 200 {object} router.successResponse{data=TokenResponse} "Authenticated"
// @Failure 401 {object} router.errorResponse "Account is deactivated"
// @Failure 404 {object} router.errorResponse "Account not found"
// @Failure 410 {object} router.errorResponse "OTP expired or invalid"
// @Failure 422 {object} router.errorResponse "Invalid or expired OTP"
// @Router /api/v1/auth/login/verify [post]
func (h *HTTPEndpoint) LoginVerify(r *router.Request) (any, error) {
	var req LoginVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.LoginVerify(r.Context(), usecase.LoginVerifyInput{
		OtpToken: req.OtpToken,
		Code:     req.Code,
	})
	if err != nil {
		return nil, err
	}

	return newTokenResponse(resp, "Login successful"), nil
}

// @Summary Request password reset OTP
// @Description Mails a password reset OTP when the email belongs to an admin. The response is the same for unknown emails.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body PasswordForgotRequest true "Forgot password payload"
// @Success 200 {object} router.successResponse{data=OTPChallengeResponse} "OTP sent"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 429 {object} router.errorResponse "Too many OTP requests"
// @Failure 503 {object} router.errorResponse "Unable to send OTP email"
// @Router /api/v1/auth/password/forgot [post]
func (h *HTTPEndpoint) PasswordForgot(r *router.Request) (any, error) {
	var req PasswordForgotRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	challenge, err := h.uc.PasswordForgot(r.Context(), usecase.PasswordForgotInput{
		Email: req.Email,
		IP:    r.ClientIP(),
	})
	if err != nil {
		return nil, err
	}

	if challenge == nil {
		return OTPChallengeResponse{msg: "If the email exists, an OTP has been sent"}, nil
	}

	return OTPChallengeResponse{
		OtpToken:  challenge.OtpToken,
		ExpiresIn: challenge.ExpiresIn,
		msg:       "OTP sent to your email",
	}, nil
}

// @Summary Reset password
// @Description Verifies a password reset OTP and sets a new password.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body PasswordResetRequest true "Reset password payload"
// @Success 200 {object} router.successResponse{data=TokenResponse} "Password reset"
// @Failure 410 {object} router.errorResponse "OTP expired or invalid"
// @Failure 422 {object} router.errorResponse "Invalid or expired OTP"
// @Router /api/v1/auth/password/reset [post]
func (h *HTTPEndpoint) PasswordReset(r *router.Request) (any, error) {
	var req PasswordResetRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.PasswordReset(r.Context(), usecase.PasswordResetInput{
		OtpToken:             req.OtpToken,
		Code:                 req.Code,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		return nil, err
	}

	return newTokenResponse(resp, "Password reset successful"), nil
}

// @Summary Current admin
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} router.successResponse{data=AdminResponse} "Profile"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Router /api/v1/auth/me [get]
func (h *HTTPEndpoint) Me(r *router.Request) (any, error) {
	admin, err := h.uc.Me(r.Context())
	if err != nil {
		return nil, err
	}

	return toAdminResponse(*admin), nil
}

// @Summary Request password change OTP
// @Description Mails a password change OTP to the current admin.
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} router.successResponse{data=OTPChallengeResponse} "OTP sent"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 429 {object} router.errorResponse "Too many OTP requests"
// @Failure 503 {object} router.errorResponse "Unable to send OTP email"
// @Router /api/v1/auth/password/change/request-otp [post]
func (h *HTTPEndpoint) PasswordChangeRequest(r *router.Request) (any, error) {
	challenge, err := h.uc.PasswordChangeRequest(r.Context(), usecase.PasswordChangeRequestInput{IP: r.ClientIP()})
	if err != nil {
		return nil, err
	}

	return OTPChallengeResponse{
		OtpToken:  challenge.OtpToken,
		ExpiresIn: challenge.ExpiresIn,
		msg:       "OTP sent to your email",
	}, nil
}

// @Summary Change password
// @Tags Auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body PasswordChangeRequest true "Change password payload"
// @Success 200 {object} router.successResponse{data=TokenResponse} "Password updated"
// @Failure 410 {object} router.errorResponse "OTP expired or invalid"
// @Failure 422 {object} router.errorResponse "Invalid or expired OTP"
// @Router /api/v1/auth/password/change [post]
func (h *HTTPEndpoint) PasswordChange(r *router.Request) (any, error) {
	var req PasswordChangeRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.PasswordChange(r.Context(), usecase.PasswordChangeInput{
		OtpToken:             req.OtpToken,
		Code:                 req.Code,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		return nil, err
	}

	return newTokenResponse(resp, "Password updated successfully"), nil
}

// @Summary Request email change OTP
// @Description Mails an email change OTP to the new address.
// @Tags Auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body EmailChangeOTPRequest true "New email"
// @Success 200 {object} router.successResponse{data=OTPChallengeResponse} "OTP sent"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 429 {object} router.errorResponse "Too many OTP requests"
// @Failure 503 {object} router.errorResponse "Unable to send OTP email"
// @Router /api/v1/auth/email/change/request-otp [post]
func (h *HTTPEndpoint) EmailChangeRequest(r *router.Request) (any, error) {
	var req EmailChangeOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	challenge, err := h.uc.EmailChangeRequest(r.Context(), usecase.EmailChangeRequestInput{
		NewEmail: req.NewEmail,
		IP:       r.ClientIP(),
	})
	if err != nil {
		return nil, err
	}

	return OTPChallengeResponse{
		OtpToken:  challenge.OtpToken,
		ExpiresIn: challenge.ExpiresIn,
		msg:       "OTP sent to your new email",
	}, nil
}

// @Summary Change email
// @Tags Auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body EmailChangeRequest true "Change email payload"
// @Success 200 {object} router.successResponse{data=TokenResponse} "Email updated"
// @Failure 409 {object} router.errorResponse "Email already taken"
// @Failure 410 {object} router.errorResponse "OTP expired or invalid"
// @Failure 422 {object} router.errorResponse "Invalid or expired OTP"
// @Router /api/v1/auth/email/change [post]
func (h *HTTPEndpoint) EmailChange(r *router.Request) (any, error) {
	var req EmailChangeRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.EmailChange(r.Context(), usecase.EmailChangeInput{
		OtpToken: req.OtpToken,
		Code:     req.Code,
		NewEmail: req.NewEmail,
	})
	if err != nil {
		return nil, err
	}

	return newTokenResponse(resp, "Email updated successfully"), nil
}

// @Summary List admins
// @Tags Admins
// @Security BearerAuth
// @Produce json
// @Param size query int false "Pagination size"
// @Param page query int false "Pagination page"
// @Success 200 {object} router.successResponse{data=AdminsResponse} "Admin list"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Router /api/v1/admins [get]
func (h *HTTPEndpoint) AdminList(r *router.Request) (any, error) {
	size, err := r.GetQueryInt32("size")
	if err != nil {
		return nil, err
	}

	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.AdminList(r.Context(), usecase.AdminListInput{Page: page, Size: size})
	if err != nil {
		return nil, err
	}

	admins := make([]AdminResponse, 0, len(resp.Admins))
	for _, a := range resp.Admins {
		admins = append(admins, toAdminResponse(a))
	}

	return AdminsResponse{
		Admins: admins,
		total:  resp.Total,
		size:   resp.Size,
		page:   resp.Page,
	}, nil
}

// @Summary Get admin
// @Tags Admins
// @Security BearerAuth
// @Produce json
// @Param id path int true "Admin ID"
// @Success 200 {object} router.successResponse{data=AdminResponse} "Admin"
// @Failure 404 {object} router.errorResponse "Admin not found"
// @Router /api/v1/admins/{id} [get]
func (h *HTTPEndpoint) AdminDetail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	admin, err := h.uc.AdminDetail(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return toAdminResponse(*admin), nil
}

// @Summary Create admin
// @Tags Admins
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body AdminCreateRequest true "Admin payload"
// @Success 201 {object} router.successResponse{data=AdminResponse} "Created"
// @Failure 409 {object} router.errorResponse "Email already taken"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/admins [post]
func (h *HTTPEndpoint) AdminCreate(r *router.Request) (any, error) {
	var req AdminCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	admin, err := h.uc.AdminCreate(r.Context(), usecase.AdminCreateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return nil, err
	}

	return AdminCreateResponse{toAdminResponse(*admin)}, nil
}

// @Summary Update admin
// @Tags Admins
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Admin ID"
// @Param request body AdminUpdateRequest true "Fields to change"
// @Success 200 {object} router.successResponse{data=AdminResponse} "Updated"
// @Failure 404 {object} router.errorResponse "Admin not found"
// @Failure 409 {object} router.errorResponse "Email already taken"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/admins/{id} [put]
func (h *HTTPEndpoint) AdminUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req AdminUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	admin, err := h.uc.AdminUpdate(r.Context(), usecase.AdminUpdateInput{
		ID:       id,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		IsActive: req.IsActive,
	})
	if err != nil {
		return nil, err
	}

	return AdminUpdateResponse{toAdminResponse(*admin)}, nil
}

// @Summary Delete admin
// @Tags Admins
// @Security BearerAuth
// @Produce json
// @Param id path int true "Admin ID"
// @Success 200 {object} router.successResponse "Deleted"
// @Failure 404 {object} router.errorResponse "Admin not found"
// @Failure 422 {object} router.errorResponse "Cannot delete own account"
// @Router /api/v1/admins/{id} [delete]
func (h *HTTPEndpoint) AdminDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.AdminDelete(r.Context(), id); err != nil {
		return nil, err
	}

	return AdminDeleteResponse{}, nil
}
