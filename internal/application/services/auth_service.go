package services

import (
	"errors"

	"github.com/luxeestates/luxegate-go/internal/infrastructure/messaging"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/observability/logging"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/security"
	"github.com/luxeestates/luxegate-go/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned on a failed operator login attempt.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles operator authentication and the persisted admin flag.
type AuthService struct {
	state       *StateService
	broadcaster *messaging.SessionBroadcaster
	logger      *logging.ChanneledLogger
}

// NewAuthService creates a new authentication service
func NewAuthService(state *StateService, broadcaster *messaging.SessionBroadcaster, logger *logging.ChanneledLogger) *AuthService {
	return &AuthService{
		state:       state,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// Login validates the operator password. On success it persists the admin
// flag and returns a session JWT. A failed attempt changes nothing: the
// session keeps whatever admin status it already had.
func (a *AuthService) Login(password string) (string, error) {
	if !a.checkPassword(password) {
		a.logger.Auth().Warn("Admin login attempt failed")
		return "", ErrInvalidCredentials
	}

	if err := a.state.CommitAdminFlag(true); err != nil {
		a.logger.Auth().Error("Admin flag persist failed", "error", err.Error())
		return "", err
	}

	token, err := security.GenerateAdminToken(config.JWTSecret, config.AdminTokenTTL)
	if err != nil {
		a.logger.Auth().Error("Admin token generation failed", "error", err.Error())
		return "", err
	}

	a.logger.Auth().Info("Admin login succeeded")
	sess := a.state.GetSessionState()
	a.broadcaster.BroadcastSessionUpdate(sess.Unlocked, sess.AdminLoggedIn)
	return token, nil
}

// Logout clears the persisted admin flag. Logging out while already logged
// out succeeds and stays logged out.
func (a *AuthService) Logout() error {
	if err := a.state.CommitAdminFlag(false); err != nil {
		return err
	}

	a.logger.Auth().Info("Admin logged out")
	sess := a.state.GetSessionState()
	a.broadcaster.BroadcastSessionUpdate(sess.Unlocked, sess.AdminLoggedIn)
	return nil
}

// IsAuthorized reports whether a presented token is a valid operator token.
func (a *AuthService) IsAuthorized(token string) bool {
	return security.IsAdminToken(token, config.JWTSecret)
}

// checkPassword compares against the configured admin password, accepting
// either a bcrypt hash or a plaintext value in configuration.
func (a *AuthService) checkPassword(password string) bool {
	if config.AdminPassword == "" {
		return false
	}

	if err := bcrypt.CompareHashAndPassword([]byte(config.AdminPassword), []byte(password)); err == nil {
		return true
	}

	// Fallback for plaintext passwords during transition/testing
	return password == config.AdminPassword
}
