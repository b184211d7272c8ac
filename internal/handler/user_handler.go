package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ahmedzein1234/legaldocs-sub005/internal/apperror"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/model/requestresponse"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/ports"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/security"
)

type UserHandler struct {
	ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService}
}

// Register godoc
// @Summary Account registration
// @Description Creates a client or lawyer account and returns its first token pair.
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.RegisterRequest true "Account details"
// @Success 201 {object} requestresponse.RegisterResponse
// @Failure 409 {object} apperror.AppError "Email already registered"
// @Failure 422 {object} apperror.AppError "Field validation failures"
// @Failure 429 {object} apperror.AppError "Too many attempts from this IP"
// @Router /api/users/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)

	var req requestresponse.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.WriteJSON(w, apperror.New(apperror.CodeBadRequest, lang))
		return
	}

	user, tokens, err := h.UserService.Register(r.Context(), req.Email, req.Password, req.Role, req.Language)
	if err != nil {
		apperror.WriteJSON(w, mapServiceError(err, lang))
		return
	}

	security.SetTokenCookies(w, tokens)

	resp := requestresponse.RegisterResponse{Success: true}
	resp.Data.Tokens = requestresponse.TokenData{
		AccessToken:     tokens.AccessToken,
		RefreshToken:    tokens.RefreshToken,
		AccessExpiresAt: tokens.AccessExpiresAt,
	}
	resp.Data.User = requestresponse.NewUserData(user)

	sendJSON(w, http.StatusCreated, resp)
}

// GetUser godoc
// @Summary Account details
// @Description Returns an account. Non-admin callers can only read their own.
// @Tags Users
// @Produce json
// @Param uuid path string true "Account UUID"
// @Success 200 {object} requestresponse.UserResponse
// @Failure 403 {object} apperror.AppError
// @Failure 404 {object} apperror.AppError
// @Security ApiKeyAuth
// @Router /api/users/{uuid} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)

	user, err := h.UserService.GetUser(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		apperror.WriteJSON(w, mapServiceError(err, lang))
		return
	}

	sendJSON(w, http.StatusOK, requestresponse.UserResponse{
		Success: true,
		Data:    requestresponse.NewUserData(user),
	})
}

// UpdateLanguage godoc
// @Summary Update language preference
// @Description Stores a new preferred language for the caller's own account. Takes effect on the next request.
// @Tags Users
// @Accept json
// @Produce json
// @Param uuid path string true "Account UUID"
// @Param body body requestresponse.UpdateLanguageRequest true "New language"
// @Success 200 {object} requestresponse.UpdatedResponse
// @Failure 403 {object} apperror.AppError
// @Failure 422 {object} apperror.AppError "Unsupported language"
// @Security ApiKeyAuth
// @Router /api/users/{uuid}/language [put]
func (h *UserHandler) UpdateLanguage(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)

	var req requestresponse.UpdateLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.WriteJSON(w, apperror.New(apperror.CodeBadRequest, lang))
		return
	}

	if err := h.UserService.UpdateLanguage(r.Context(), chi.URLParam(r, "uuid"), req.Language); err != nil {
		apperror.WriteJSON(w, mapServiceError(err, lang))
		return
	}

	resp := requestresponse.UpdatedResponse{Success: true}
	resp.Data.Updated = true
	sendJSON(w, http.StatusOK, resp)
}

// UpdatePassword godoc
// @Summary Change password
// @Description Replaces the password record after verifying the current password.
// @Tags Users
// @Accept json
// @Produce json
// @Param uuid path string true "Account UUID"
// @Param body body requestresponse.UpdatePasswordRequest true "Current and new password"
// @Success 200 {object} requestresponse.UpdatedResponse
// @Failure 401 {object} apperror.AppError "Wrong current password"
// @Failure 403 {object} apperror.AppError
// @Failure 429 {object} apperror.AppError "Sensitive-operation limit hit"
// @Security ApiKeyAuth
// @Router /api/users/{uuid}/password [put]
func (h *UserHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)

	var req requestresponse.UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.WriteJSON(w, apperror.New(apperror.CodeBadRequest, lang))
		return
	}

	if err := h.UserService.UpdatePassword(r.Context(), chi.URLParam(r, "uuid"), req.CurrentPassword, req.NewPassword); err != nil {
		apperror.WriteJSON(w, mapServiceError(err, lang))
		return
	}

	resp := requestresponse.UpdatedResponse{Success: true}
	resp.Data.Updated = true
	sendJSON(w, http.StatusOK, resp)
}

// ListUsers godoc
// @Summary List accounts
// @Description Cursor-paginated account listing. Admin only.
// @Tags Users
// @Produce json
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} requestresponse.ListUsersResponse
// @Failure 403 {object} apperror.AppError
// @Security ApiKeyAuth
// @Router /api/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	users, nextCursor, err := h.UserService.ListUsers(r.Context(), r.URL.Query().Get("cursor"), limit)
	if err != nil {
		apperror.WriteJSON(w, mapServiceError(err, lang))
		return
	}

	resp := requestresponse.ListUsersResponse{Success: true}
	resp.Data.Users = make([]requestresponse.UserData, 0, len(users))
	for _, user := range users {
		resp.Data.Users = append(resp.Data.Users, requestresponse.NewUserData(user))
	}
	resp.Data.NextCursor = nextCursor

	sendJSON(w, http.StatusOK, resp)
}
