package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	sessionStore "github.com/m04kA/SMC-SalonBooking/internal/infra/cache/session"
	"github.com/m04kA/SMC-SalonBooking/internal/service/auth/models"
)

const tokenSubject = "admin"

// Config параметры авторизации администратора
type Config struct {
	PasswordHash string
	JWTSecret    string
	TokenTTL     time.Duration
}

// Service вход администратора по паролю
// Сессия хранится на сервере, токен - подписанный HS256 JWT с ID сессии в jti
type Service struct {
	cfg          Config
	sessions     SessionStore
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(cfg Config, sessions SessionStore, logger Logger) *Service {
	return &Service{
		cfg:          cfg,
		sessions:     sessions,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Login проверяет пароль и открывает сессию
func (s *Service) Login(ctx context.Context, req *models.LoginRequest, clientIP string) (*models.LoginResponse, error) {
	if strings.TrimSpace(s.cfg.PasswordHash) == "" || s.cfg.JWTSecret == "" {
		s.logger.Error("Login: admin password hash or jwt secret is not configured")
		return nil, ErrNotConfigured
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.logger.Warn("Login: invalid password from ip=%s", clientIP)
			return nil, ErrInvalidPassword
		}
		s.logger.Error("Login: bcrypt error: %v", err)
		return nil, ErrNotConfigured
	}

	now := s.timeProvider.Now()
	session := &domain.AdminSession{
		ID:        uuid.NewString(),
		ClientIP:  clientIP,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.TokenTTL),
	}

	token, err := s.sign(session)
	if err != nil {
		s.logger.Error("Login: failed to sign token: %v", err)
		return nil, fmt.Errorf("%w: Login - sign token: %v", ErrInternal, err)
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		s.logger.Error("Login: failed to save session: %v", err)
		return nil, fmt.Errorf("%w: Login - save session: %v", ErrInternal, err)
	}

	s.logger.Info("Login: admin session=%s opened from ip=%s", session.ID, clientIP)
	return &models.LoginResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// Authenticate проверяет токен и возвращает действующую сессию
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.AdminSession, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithTimeFunc(s.timeProvider.Now), jwt.WithSubject(tokenSubject), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	if claims.ID == "" {
		return nil, fmt.Errorf("%w: token has no session id", ErrUnauthorized)
	}

	session, err := s.sessions.Get(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			return nil, fmt.Errorf("%w: session %s not found", ErrUnauthorized, claims.ID)
		}
		s.logger.Error("Authenticate: failed to load session=%s: %v", claims.ID, err)
		return nil, fmt.Errorf("%w: Authenticate - load session: %v", ErrInternal, err)
	}

	if session.IsExpired(s.timeProvider.Now()) {
		return nil, fmt.Errorf("%w: session %s expired", ErrUnauthorized, claims.ID)
	}

	return session, nil
}

// Logout закрывает сессию
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.logger.Error("Logout: failed to delete session=%s: %v", sessionID, err)
		return fmt.Errorf("%w: Logout - delete session: %v", ErrInternal, err)
	}

	s.logger.Info("Logout: admin session=%s closed", sessionID)
	return nil
}

func (s *Service) sign(session *domain.AdminSession) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        session.ID,
		Subject:   tokenSubject,
		IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
}
