package api

import (
	"errors"

	"bluedock/config"
	"bluedock/middleware"
	"bluedock/models"
	"bluedock/store"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler staff authentication
type AuthHandler struct {
	store store.Store
	cfg   *config.Config
}

// NewAuthHandler creates the auth handler
func NewAuthHandler(st store.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{store: st, cfg: cfg}
}

// LoginRequest staff credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// LoginResponse issued session
type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresIn int64       `json:"expires_in"` // seconds
	User      models.User `json:"user"`
}

// Login exchanges staff credentials for a JWT
// @Summary Staff login
// @Description Returns a bearer token for the mutating routes
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "credentials"
// @Success 200 {object} Response{data=LoginResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Usuário e senha são obrigatórios")
		return
	}

	user, err := h.store.FindUser(c.Request.Context(), req.Username)
	if errors.Is(err, store.ErrNotFound) {
		Unauthorized(c, "Usuário ou senha inválidos")
		return
	}
	if err != nil {
		storageError(c, "find user", err, "Erro ao autenticar")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		Unauthorized(c, "Usuário ou senha inválidos")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "Erro ao gerar token")
		return
	}

	Success(c, LoginResponse{
		Token:     token,
		ExpiresIn: int64(h.cfg.JWT.ExpireTime.Seconds()),
		User:      user,
	})
}
