package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/phrazzld/taskq-api/internal/api/middleware"
	"github.com/phrazzld/taskq-api/internal/api/shared"
	"github.com/phrazzld/taskq-api/internal/service"
	"github.com/phrazzld/taskq-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userService service.UserService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userService service.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

// Register handles POST /register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.userService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		middleware.RecordAuthAttempt("register", false)
		if errors.Is(err, store.ErrUsernameExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "Username already exists")
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	middleware.RecordAuthAttempt("register", true)
	shared.RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{UserID: user.ID})
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	token, err := h.userService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		middleware.RecordAuthAttempt("login", false)
		HandleAPIError(w, r, err, "")
		return
	}

	middleware.RecordAuthAttempt("login", true)
	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt.UTC().Format(time.RFC3339),
	})
}
