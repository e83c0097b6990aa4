package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/user"
	"github.com/BruksfildServices01/handyman-marketplace/internal/httperr"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
	"github.com/BruksfildServices01/handyman-marketplace/internal/validators"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	users      user.Repository
	secret     string
	emailCheck func(string) bool
}

// NewAuthHandler checks e-mail domains over DNS. Tests swap emailCheck.
func NewAuthHandler(users user.Repository, secret string) *AuthHandler {
	return &AuthHandler{
		users:      users,
		secret:     secret,
		emailCheck: validators.IsEmailDomainValid,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"omitempty,oneof=CUSTOMER PROVIDER"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !h.emailCheck(email) {
		httperr.Respond(c, httperr.ErrBusiness("invalid_email_domain"), "", "")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process password.")
		return
	}

	role := models.RoleCustomer
	if req.Role != "" {
		role = models.UserRole(req.Role)
	}

	u := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         role,
	}

	if err := h.users.CreateUser(c.Request.Context(), &u); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			httperr.Respond(c, httperr.ErrBusiness("email_already_registered"), "", "")
			return
		}
		httperr.Respond(c, err, "failed_to_create_user", "Could not create user.")
		return
	}

	token, err := h.generateToken(&u)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  u,
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	u, err := h.users.GetUserByEmail(c.Request.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not load user.")
		return
	}
	if u == nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid e-mail or password.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid e-mail or password.")
		return
	}

	token, err := h.generateToken(u)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  u,
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(u *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  u.ID,
		"role": string(u.Role),
		"exp":  now.Add(tokenTTL).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.secret))
}
