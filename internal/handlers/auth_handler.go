package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/accounts-api/internal/config"
	"github.com/BruksfildServices01/accounts-api/internal/httperr"
	"github.com/BruksfildServices01/accounts-api/internal/models"
	ucAccount "github.com/BruksfildServices01/accounts-api/internal/usecase/account"
)

type AuthHandler struct {
	authenticate *ucAccount.Authenticate
	config       *config.Config
}

func NewAuthHandler(authenticate *ucAccount.Authenticate, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authenticate: authenticate, config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	user, err := h.authenticate.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if httperr.IsBusiness(err, ucAccount.CodeInvalidCredentials) {
			httperr.Unauthorized(c, ucAccount.CodeInvalidCredentials, "E-mail ou senha inválidos.")
			return
		}
		httperr.FromError(c, err, "login_failed")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  userJSON(user),
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":       user.ID,
		"user_type": user.UserType,
		"is_staff":  user.IsStaff(),
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func userJSON(u *models.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"email":      u.Email,
		"user_type":  u.UserType,
		"is_active":  u.IsActive,
		"is_admin":   u.IsAdmin,
		"is_staff":   u.IsStaff(),
		"address_id": u.AddressID,
		"address":    u.Address,
		"last_login": u.LastLogin,
	}
}
