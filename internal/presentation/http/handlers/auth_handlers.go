package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luxeestates/luxegate-go/internal/application/services"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/observability/logging"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/observability/performance"
	"github.com/luxeestates/luxegate-go/pkg/config"
)

// AuthHandlers contains all authentication-related HTTP handlers
type AuthHandlers struct {
	authService *services.AuthService
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewAuthHandlers creates auth handlers with injected dependencies
func NewAuthHandlers(authService *services.AuthService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// PostLogin handles POST /api/v1/auth/login - operator authentication
func (h *AuthHandlers) PostLogin(c *gin.Context) {
	start := time.Now()
	marker := h.perfTracker.StartOperation("post_login_request")
	defer h.perfTracker.FinishOperation(marker)
	h.logger.Auth().Debug("Received login request", "method", c.Request.Method, "path", c.Request.URL.Path)

	var loginReq struct {
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&loginReq); err != nil {
		h.logger.Auth().Error("Login request JSON binding failed", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	token, err := h.authService.Login(loginReq.Password)
	if err != nil {
		marker.SetSuccess(false)
		h.logger.Perf().Info("Performance for PostLogin request", "duration", marker.Duration, "success", false)

		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	// HTTP-only cookie keeps the token away from page scripts
	c.SetCookie(
		"admin_auth",
		token,
		int(config.AdminTokenTTL.Seconds()),
		"/",
		"",
		false,
		true,
	)

	marker.SetSuccess(true)
	h.logger.Perf().Info("Performance for PostLogin request", "duration", marker.Duration, "success", true)
	h.logger.Auth().Info("Login successful", "duration", time.Since(start))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
	})
}

// PostLogout handles POST /api/v1/auth/logout - clears the operator session.
// Logging out while logged out succeeds.
func (h *AuthHandlers) PostLogout(c *gin.Context) {
	start := time.Now()
	marker := h.perfTracker.StartOperation("post_logout_request")
	defer h.perfTracker.FinishOperation(marker)
	h.logger.Auth().Debug("Received logout request", "method", c.Request.Method, "path", c.Request.URL.Path)

	if err := h.authService.Logout(); err != nil {
		marker.SetError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
		return
	}

	c.SetCookie("admin_auth", "", -1, "/", "", false, true)

	marker.SetSuccess(true)
	h.logger.Auth().Info("Logout completed", "duration", time.Since(start))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logout successful",
	})
}

// GetAuthStatus handles GET /api/v1/auth/status - reports whether the
// presented token still authorizes back-office access.
func (h *AuthHandlers) GetAuthStatus(c *gin.Context) {
	marker := h.perfTracker.StartOperation("get_auth_status_request")
	defer h.perfTracker.FinishOperation(marker)

	token, _ := c.Cookie("admin_auth")
	authorized := h.authService.IsAuthorized(token)

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{"authenticated": authorized})
}
