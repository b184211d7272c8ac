package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ahmedzein1234/legaldocs-sub005/internal/apperror"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/model/requestresponse"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/ports"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/security"
)

type AuthenticationHandler struct {
	ports.AuthenticationService
}

func NewAuthenticationHandler(authenticationService ports.AuthenticationService) *AuthenticationHandler {
	return &AuthenticationHandler{authenticationService}
}

// Login godoc
// @Summary User authentication
// @Description Issues an access+refresh token pair for valid credentials. Tokens are also set as httpOnly cookies for browser clients.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Credentials"
// @Success 200 {object} requestresponse.LoginResponse
// @Failure 401 {object} apperror.AppError "Invalid credentials"
// @Failure 422 {object} apperror.AppError "Missing fields"
// @Failure 429 {object} apperror.AppError "Too many attempts from this IP"
// @Router /api/auth/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)

	var req requestresponse.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.WriteJSON(w, apperror.New(apperror.CodeBadRequest, lang))
		return
	}

	details := map[string][]string{}
	if req.Email == "" {
		details["email"] = append(details["email"], "email is required")
	}
	if req.Password == "" {
		details["password"] = append(details["password"], "password is required")
	}
	if len(details) > 0 {
		apperror.WriteJSON(w, apperror.NewValidation(lang, details))
		return
	}

	tokens, user, err := h.AuthenticationService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		apperror.WriteJSON(w, mapServiceError(err, lang))
		return
	}

	security.SetTokenCookies(w, tokens)

	resp := requestresponse.LoginResponse{Success: true}
	resp.Data.Tokens = requestresponse.TokenData{
		AccessToken:     tokens.AccessToken,
		RefreshToken:    tokens.RefreshToken,
		AccessExpiresAt: tokens.AccessExpiresAt,
	}
	resp.Data.User = requestresponse.NewUserData(user)

	sendJSON(w, http.StatusOK, resp)
}

// Refresh godoc
// @Summary Token refresh
// @Description Exchanges a valid refresh token (body field or refresh_token cookie) for a new pair.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RefreshRequest false "Refresh token"
// @Success 200 {object} requestresponse.RefreshResponse
// @Failure 401 {object} apperror.AppError "Expired or invalid refresh token"
// @Router /api/auth/refresh [post]
func (h *AuthenticationHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)

	var req requestresponse.RefreshRequest
	if r.Body != nil {
		// The body is optional for cookie clients; a decode failure on an
		// empty body is not an error.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	refreshToken := req.RefreshToken
	if refreshToken == "" {
		if cookieToken, ok := security.TokenFromCookie(r, security.RefreshTokenCookie); ok {
			refreshToken = cookieToken
		}
	}
	if refreshToken == "" {
		apperror.WriteJSON(w, apperror.New(apperror.CodeUnauthorized, lang))
		return
	}

	tokens, err := h.AuthenticationService.Refresh(r.Context(), refreshToken)
	if err != nil {
		apperror.WriteJSON(w, mapServiceError(err, lang))
		return
	}

	security.SetTokenCookies(w, tokens)

	resp := requestresponse.RefreshResponse{Success: true}
	resp.Data.Tokens = requestresponse.TokenData{
		AccessToken:     tokens.AccessToken,
		RefreshToken:    tokens.RefreshToken,
		AccessExpiresAt: tokens.AccessExpiresAt,
	}

	sendJSON(w, http.StatusOK, resp)
}

// Logout godoc
// @Summary End the browser session
// @Description Clears both token cookies. Bearer clients simply discard their tokens; there is no server-side revocation list.
// @Tags Authentication
// @Produce json
// @Success 200 {object} requestresponse.LogoutResponse
// @Failure 401 {object} apperror.AppError
// @Security ApiKeyAuth
// @Router /api/auth/logout [post]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	security.ClearTokenCookies(w)

	resp := requestresponse.LogoutResponse{Success: true}
	resp.Data.LoggedOut = true

	sendJSON(w, http.StatusOK, resp)
}

// Me godoc
// @Summary Current caller identity
// @Description Returns the identity attached to the request by the authenticator.
// @Tags Authentication
// @Produce json
// @Success 200 {object} requestresponse.CurrentUserResponse
// @Failure 401 {object} apperror.AppError
// @Security ApiKeyAuth
// @Router /api/auth/me [get]
func (h *AuthenticationHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := security.IdentityFromContext(r.Context())
	if !ok {
		apperror.WriteJSON(w, apperror.New(apperror.CodeUnauthorized, requestLanguage(r)))
		return
	}

	resp := requestresponse.CurrentUserResponse{Success: true}
	resp.Data.UserUUID = identity.UserUUID
	resp.Data.Email = identity.Email
	resp.Data.Role = string(identity.Role)
	resp.Data.Language = identity.Language

	sendJSON(w, http.StatusOK, resp)
}
