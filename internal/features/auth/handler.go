package auth

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/mubashirjatoi/todo-api/internal/config"
	"github.com/mubashirjatoi/todo-api/internal/pkg/response"
	"github.com/mubashirjatoi/todo-api/internal/pkg/token"
	apperrors "github.com/mubashirjatoi/todo-api/pkg/errors"
)

// UserStore is the persistence surface the auth handlers need
type UserStore interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, userID string) (*User, error)
}

type Handler struct {
	store UserStore
	cfg   *config.Config
}

func NewHandler(store UserStore, cfg *config.Config) *Handler {
	return &Handler{store: store, cfg: cfg}
}

// Register godoc
// @Summary Register a new account
// @Description Create an account with email and password, returning a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateRegister(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.InternalServerError(c, "Failed to create account")
		return
	}

	user := &User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
	}

	if err := h.store.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			response.Conflict(c, "Email already registered")
			return
		}
		response.DatabaseError(c, "Failed to create account")
		return
	}

	tok, err := token.Generate(user.ID.Hex(), user.Email, h.cfg.JWTSecret, h.cfg.JWTExpireHours)
	if err != nil {
		response.InternalServerError(c, "Failed to issue token")
		return
	}

	response.Created(c, AuthResponse{Token: tok, User: user})
}

// Login godoc
// @Summary Log in with email and password
// @Description Verify credentials and return a JWT. Unknown email and wrong
// @Description password are indistinguishable from the outside.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateLogin(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	user, err := h.store.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.DatabaseError(c, "Failed to log in")
		return
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		response.Unauthorized(c, "Invalid email or password")
		return
	}

	tok, err := token.Generate(user.ID.Hex(), user.Email, h.cfg.JWTSecret, h.cfg.JWTExpireHours)
	if err != nil {
		response.InternalServerError(c, "Failed to issue token")
		return
	}

	response.Success(c, AuthResponse{Token: tok, User: user})
}

// Me godoc
// @Summary Get the current user
// @Description Return the account behind the presented token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetString("userID")

	user, err := h.store.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrInvalidID) {
			response.NotFound(c, "User not found")
			return
		}
		response.DatabaseError(c, "Failed to load user")
		return
	}

	response.Success(c, user)
}
