package devserver

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"logistica/internal/rate_limiter"
	"logistica/pkg/models"
	"logistica/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	Repository  UserRepository
	tokens      *security.Tokens
	rateLimiter *rate_limiter.RateLimiter
	log         *zap.Logger
}

func NewAuthHandler(r UserRepository, tokens *security.Tokens, limiter *rate_limiter.RateLimiter, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		Repository:  r,
		tokens:      tokens,
		rateLimiter: limiter,
		log:         log,
	}
}

func (h *AuthHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/login", h.Login)
	router.POST("/register", h.Register)
}

func (h *AuthHandler) Login(c *gin.Context) {
	key := clientKey(c)
	if !h.rateLimiter.IsAllowed(key) {
		resetAt := time.Now().Add(h.rateLimiter.Window()).Format(time.RFC3339)
		c.Header("X-RateLimit-Limit", strconv.Itoa(h.rateLimiter.Limit()))
		c.Header("X-RateLimit-Remaining", "0")
		c.Header("X-RateLimit-Reset", resetAt)
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":    "Muitas tentativas de login. Tente novamente mais tarde.",
			"reset_at": resetAt,
		})
		return
	}

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	account, err := h.Repository.FindByEmail(strings.TrimSpace(req.Email))
	if err != nil || security.CheckPassword(account.PasswordHash, req.Password) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if !account.IsActive() {
		c.JSON(http.StatusForbidden, gin.H{"error": "User is inactive"})
		return
	}

	resp := models.LoginResponse{
		Name:    account.Name,
		Email:   account.Email,
		Profile: account.Profile,
	}

	if h.tokens.Enabled() {
		resp.Token, err = h.tokens.GenerateJWT(account.ID.String(), account.Profile, account.Email)
		if err != nil {
			h.log.Error("Failed to generate token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
	}

	h.log.Info("User logged in", zap.String("email", account.Email))
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Profile = strings.TrimSpace(req.Profile)
	if req.Name == "" || req.Email == "" || req.Profile == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email, profile and password are required"})
		return
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user, err := h.Repository.PersistUser(req, hashedPassword)
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// clientKey identifies the caller for rate limiting. Forwarding headers count
// only when the engine trusts the peer. Behind private or loopback addresses
// many devices share one IP, so the user agent is added.
func clientKey(c *gin.Context) string {
	clientIP := c.ClientIP()

	if ip := net.ParseIP(clientIP); ip == nil || ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() {
		return clientIP + ":" + c.GetHeader("User-Agent")
	}
	return clientIP
}
