package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/carhub/auth/password"
	"github.com/skillsenselab/carhub/auth/token"
	apperrors "github.com/skillsenselab/carhub/errors"
	"github.com/skillsenselab/carhub/identity"
	"github.com/skillsenselab/carhub/logger"
	"github.com/skillsenselab/carhub/observability"
	"github.com/skillsenselab/carhub/server"
	"github.com/skillsenselab/carhub/validation"
)

type loginRequest struct {
	Username string `json:"username" validate:"required,notblank,max=100"`
	Password string `json:"password" validate:"required,notblank,max=72"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,notblank,max=100"`
	Password string `json:"password" validate:"required,notblank,min=8,max=72"`
}

type loginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
}

// Handler serves the login and registration endpoints. It orchestrates the
// authenticator and token service for login, and the credential store and
// hasher for registration; it holds no state of its own.
type Handler struct {
	authenticator *Authenticator
	tokens        *token.Service
	store         identity.Store
	hasher        password.Hasher
	metrics       *observability.AuthMetrics
	log           *logger.Logger
}

// NewHandler creates the auth endpoint handler. metrics may be nil.
func NewHandler(authenticator *Authenticator, tokens *token.Service, store identity.Store, hasher password.Hasher, metrics *observability.AuthMetrics, log *logger.Logger) *Handler {
	return &Handler{
		authenticator: authenticator,
		tokens:        tokens,
		store:         store,
		hasher:        hasher,
		metrics:       metrics,
		log:           log.WithComponent("auth"),
	}
}

// RegisterRoutes mounts the auth endpoints. Both are public routes.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/auth/login", h.Login)
	r.POST("/auth/register", h.Register)
}

// Login exchanges valid credentials for a signed bearer token.
// The failure body is identical for unknown users and wrong passwords, and
// the submitted password never reaches a log or response.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.BadRequest("request body must be valid JSON"))
		return
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	ctx := c.Request.Context()
	id, err := h.authenticator.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			h.metrics.RecordLogin(ctx, "denied")
			h.log.Warn("login denied", logger.Fields(logger.FieldUsername, req.Username))
			server.RespondWithError(c, apperrors.InvalidCredentials(req.Username))
			return
		}
		h.metrics.RecordLogin(ctx, "error")
		server.RespondWithError(c, apperrors.Internal(err))
		return
	}

	signed, err := h.tokens.Issue(id.Username, time.Now())
	if err != nil {
		h.metrics.RecordLogin(ctx, "error")
		server.RespondWithError(c, apperrors.Internal(err))
		return
	}

	h.metrics.RecordLogin(ctx, "granted")
	h.log.Info("login granted", logger.Fields(logger.FieldUsername, id.Username))
	c.JSON(http.StatusOK, loginResponse{Token: signed, TokenType: "Bearer"})
}

// Register creates a new identity with the default role. A duplicate
// username, including one lost in a race against a concurrent registration,
// surfaces as the user_exists conflict.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.BadRequest("request body must be valid JSON"))
		return
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		server.RespondWithError(c, apperrors.Internal(err))
		return
	}

	id := &identity.Identity{
		Username:     req.Username,
		PasswordHash: hash,
		Roles:        identity.DefaultRole,
	}
	if err := h.store.Create(c.Request.Context(), id); err != nil {
		if errors.Is(err, identity.ErrDuplicate) {
			server.RespondWithError(c, apperrors.UserExists())
			return
		}
		server.RespondWithError(c, apperrors.Internal(err))
		return
	}

	h.log.Info("user registered", logger.Fields(logger.FieldUsername, id.Username))
	c.JSON(http.StatusCreated, gin.H{
		"username": id.Username,
		"status":   "created",
	})
}
