package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cortefacil/corte-facil-api/internal/audit"
	"github.com/cortefacil/corte-facil-api/internal/config"
	userdomain "github.com/cortefacil/corte-facil-api/internal/domain/user"
	"github.com/cortefacil/corte-facil-api/internal/httperr"
	"github.com/cortefacil/corte-facil-api/internal/httpresp"
	"github.com/cortefacil/corte-facil-api/internal/middleware"
	"github.com/cortefacil/corte-facil-api/internal/models"
	"github.com/cortefacil/corte-facil-api/internal/validators"
)

type AuthHandler struct {
	users  userdomain.Repository
	config *config.Config
	audit  *audit.Dispatcher
	log    *zap.Logger
}

func NewAuthHandler(
	users userdomain.Repository,
	cfg *config.Config,
	dispatcher *audit.Dispatcher,
	log *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		users:  users,
		config: cfg,
		audit:  dispatcher,
		log:    log,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
	Phone    string `json:"telefone"`
	Role     string `json:"tipo"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		httperr.BadRequest(c, "missing_fields", "Todos os campos são obrigatórios.")
		return
	}

	if len(req.Password) < 6 {
		httperr.BadRequest(c, "password_too_short", "A senha deve ter pelo menos 6 caracteres.")
		return
	}

	email := validators.NormalizeEmail(req.Email)
	if !validators.IsEmail(email) {
		httperr.BadRequest(c, "invalid_email", "E-mail inválido.")
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleClient
	}
	if !models.IsValidRole(role) {
		httperr.BadRequest(c, "invalid_role", "Tipo de usuário inválido.")
		return
	}

	// Explicit duplicate guard: the store enforces uniqueness too, but
	// its violation error is dialect-specific.
	if _, err := h.users.FindByEmail(c.Request.Context(), email); err == nil {
		httperr.Conflict(c, "email_already_registered", "Este e-mail já está cadastrado.")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		h.log.Error("register: email lookup failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Erro interno do servidor. Tente novamente.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.log.Error("register: hash failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Erro interno do servidor. Tente novamente.")
		return
	}

	u := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         role,
	}

	if err := h.users.Create(c.Request.Context(), &u); err != nil {
		h.log.Error("register: create failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Erro interno do servidor. Tente novamente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &u.ID,
	})

	httpresp.Created(c, gin.H{"mensagem": "Usuário cadastrado com sucesso!"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Email == "" || req.Password == "" {
		httperr.BadRequest(c, "missing_fields", "E-mail e senha são obrigatórios.")
		return
	}

	email := validators.NormalizeEmail(req.Email)

	// Unknown address and wrong password share one status and one
	// message so the response never reveals whether the account exists.
	u, err := h.users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
			return
		}
		h.log.Error("login: email lookup failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Erro interno do servidor. Tente novamente.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
		return
	}

	token, err := h.generateToken(u)
	if err != nil {
		h.log.Error("login: token generation failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Erro interno do servidor. Tente novamente.")
		return
	}

	httpresp.OK(c, gin.H{
		"mensagem": "Login realizado com sucesso!",
		"token":    token,
		"usuario": gin.H{
			"id":    u.ID,
			"nome":  u.Name,
			"email": u.Email,
			"tipo":  u.Role,
		},
	})
}

// Me returns the authenticated user's summary from the token subject.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	u, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
			return
		}
		h.log.Error("me: lookup failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Erro interno do servidor. Tente novamente.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"usuario": gin.H{
			"id":       u.ID,
			"nome":     u.Name,
			"email":    u.Email,
			"telefone": u.Phone,
			"tipo":     u.Role,
		},
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(u *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  u.ID,
		"role": u.Role,
		"name": u.Name,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
