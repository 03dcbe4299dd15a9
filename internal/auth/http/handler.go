package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/AlibekovAA/feedboard/backend/internal/auth/bearer"
	"github.com/AlibekovAA/feedboard/backend/internal/auth/service"
	commonerrors "github.com/AlibekovAA/feedboard/backend/internal/common/errors"
	commonhttp "github.com/AlibekovAA/feedboard/backend/internal/common/http"
	"github.com/AlibekovAA/feedboard/backend/internal/common/logger"
)

type authRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type Handler struct {
	auth     *service.AuthService
	validate *validator.Validate
	log      *logger.Logger
}

func NewHandler(auth *service.AuthService, log *logger.Logger) *Handler {
	return &Handler{
		auth:     auth,
		validate: validator.New(),
		log:      log,
	}
}

// Authenticate handles POST /auth.
func (h *Handler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("auth failed: invalid json: %v", err)
		commonhttp.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.log.Warnf("auth failed: missing credentials: %v", err)
		commonhttp.WriteError(w, http.StatusBadRequest, "login and password are required")
		return
	}

	token, err := h.auth.Authenticate(r.Context(), service.AuthenticateInput{
		Login:    req.Login,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrInvalidCredentials) {
			commonhttp.HandleError(w, r, commonerrors.ErrAuthenticationFailed.WithCause(err), h.log)
			return
		}
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// Me handles GET /private/me. It runs behind the bearer middleware, so a
// missing context user means the route was wired without the guard.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := bearer.FromContext(r.Context())
	if !ok {
		commonhttp.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, user.Profile())
}
