package authenticating

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/customer-inactivity-api/internal/config"
	"github.com/vfg2006/customer-inactivity-api/internal/domain"
	"github.com/vfg2006/customer-inactivity-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 24 * time.Hour

//go:generate mockgen -source=service.go -destination=mocks/mock_authenticator.go -package=mocks

type Authenticator interface {
	Enabled() bool
	Login(username, password string) (*domain.LoginResponse, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// Service autentica o operador único configurado por variáveis de ambiente
type Service struct {
	cfg config.Auth
	key []byte
	now func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	auth := cfg.Auth
	if auth.TokenTTL <= 0 {
		auth.TokenTTL = defaultTokenTTL
	}

	return &Service{
		cfg: auth,
		key: []byte(cfg.SecretKey),
		now: time.Now,
	}
}

func (s *Service) Enabled() bool {
	return s.cfg.Enabled
}

func (s *Service) Login(username, password string) (*domain.LoginResponse, error) {
	if !s.cfg.Enabled {
		return nil, disabledError()
	}

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, credentialsError("Usuário e senha são obrigatórios", ErrMissingRequiredData)
	}

	sameUser := subtle.ConstantTimeCompare([]byte(strings.ToLower(username)), []byte(strings.ToLower(s.cfg.Username))) == 1

	// A senha é sempre comparada para não revelar se o usuário existe pelo tempo de resposta
	passwordErr := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password))
	if !sameUser || passwordErr != nil {
		return nil, credentialsError("Usuário ou senha incorretos", ErrInvalidCredentials)
	}

	token, err := s.generateJWT(s.cfg.Username)
	if err != nil {
		return nil, NewAuthError(apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação", err)
	}

	return &domain.LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.cfg.TokenTTL.Seconds()),
	}, nil
}

func (s *Service) generateJWT(username string) (string, error) {
	now := s.now()
	claims := domain.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.key, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// HashPassword gera o hash bcrypt usado em AUTH_PASSWORD_HASH
func HashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", errors.New("a senha deve conter pelo menos 8 caracteres")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}
