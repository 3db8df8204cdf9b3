package user

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"sociality/internal/common"
	"sociality/internal/media"
)

// Handler serves auth, profile and follow-graph routes.
type Handler struct {
	svc      UserService
	storage  media.Storage
	validate *validator.Validate
	logger   *zap.Logger

	publicBaseURL string
	maxUploadMB   int64
}

func NewHandler(svc UserService, storage media.Storage, validate *validator.Validate, logger *zap.Logger, publicBaseURL string, maxUploadMB int64) *Handler {
	if maxUploadMB <= 0 {
		maxUploadMB = 8
	}
	return &Handler{
		svc:           svc,
		storage:       storage,
		validate:      validate,
		logger:        logger,
		publicBaseURL: publicBaseURL,
		maxUploadMB:   maxUploadMB,
	}
}

// RegisterRoutes mounts everything under /api.
func (h *Handler) RegisterRoutes(api *mux.Router, auth *common.Auth) {
	api.Handle("/auth/register", http.HandlerFunc(h.handleRegister)).Methods(http.MethodPost)
	api.Handle("/auth/login", http.HandlerFunc(h.handleLogin)).Methods(http.MethodPost)

	api.Handle("/me", auth.Require(http.HandlerFunc(h.handleMe))).Methods(http.MethodGet)
	api.Handle("/me", auth.Require(http.HandlerFunc(h.handleUpdateMe))).Methods(http.MethodPatch, http.MethodPut)
	api.Handle("/me/followers", auth.Require(http.HandlerFunc(h.handleMeFollowers))).Methods(http.MethodGet)
	api.Handle("/me/following", auth.Require(http.HandlerFunc(h.handleMeFollowing))).Methods(http.MethodGet)

	api.Handle("/follow/{username}", auth.Require(http.HandlerFunc(h.handleFollow))).Methods(http.MethodPost)
	api.Handle("/follow/{username}", auth.Require(http.HandlerFunc(h.handleUnfollow))).Methods(http.MethodDelete)

	// the literal search path must be mounted before {username} or it would
	// be captured as a profile lookup for a user named "search"
	api.Handle("/users/search", auth.Optional(http.HandlerFunc(h.handleSearch))).Methods(http.MethodGet)
	api.Handle("/users", auth.Optional(http.HandlerFunc(h.handleSearch))).Methods(http.MethodGet)
	api.Handle("/users/{username}", auth.Optional(http.HandlerFunc(h.handleProfile))).Methods(http.MethodGet)
	api.Handle("/users/{username}/followers", auth.Optional(http.HandlerFunc(h.handleUserFollowers))).Methods(http.MethodGet)
	api.Handle("/users/{username}/following", auth.Optional(http.HandlerFunc(h.handleUserFollowing))).Methods(http.MethodGet)
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Username string `json:"username" validate:"required,min=3,max=30,handle"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,max=20,phone"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, h.logger, common.NewError(common.CodeValidation, "Invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		common.WriteError(w, h.logger, common.ValidationError("Invalid input", common.FieldErrors(err)))
		return
	}

	token, err := h.svc.Register(r.Context(), RegisterInput{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, map[string]interface{}{"token": token})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, h.logger, common.NewError(common.CodeValidation, "Invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		common.WriteError(w, h.logger, common.ValidationError("Invalid input", common.FieldErrors(err)))
		return
	}

	token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"token": token})
}

func pathUsername(r *http.Request) string {
	return mux.Vars(r)["username"]
}

// wantsEnvelope mirrors the long-standing list quirk: an explicit page or
// limit opts into the paginated envelope, a bare request gets a bare array.
func wantsEnvelope(r *http.Request) bool {
	q := r.URL.Query()
	return q.Get("page") != "" || q.Get("limit") != ""
}
