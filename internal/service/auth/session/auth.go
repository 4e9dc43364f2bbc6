package session_auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInternal     = errors.New("internal error")
	ErrInvalidToken = errors.New("invalid token")
	ErrRevoked      = errors.New("session revoked")
)

// SessionCacher stores live sessions keyed by token id.
type SessionCacher interface {
	Set(key string, value string, ttl time.Duration) error
	Get(key string) (string, error)
	Delete(key string) error
}

type Claims struct {
	jwt.RegisteredClaims
}

// Service issues HS256 tokens. A token is accepted only while its session
// is present in the cache, so logout takes effect before expiry.
type Service struct {
	secret        []byte
	sessionTTL    time.Duration
	sessionCacher SessionCacher
}

func New(
	secret string,
	sessionTTL time.Duration,
	sessionCacher SessionCacher,
) *Service {
	return &Service{
		secret:        []byte(secret),
		sessionTTL:    sessionTTL,
		sessionCacher: sessionCacher,
	}
}

func (s *Service) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	jti := uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Join(ErrInternal, err)
	}

	if err := s.sessionCacher.Set(jti, userID.String(), s.sessionTTL); err != nil {
		return "", errors.Join(ErrInternal, err)
	}
	return signed, nil
}

// Validate returns the user the token was issued to.
func (s *Service) Validate(token string) (uuid.UUID, error) {
	claims, err := s.parse(token)
	if err != nil {
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	owner, err := s.sessionCacher.Get(claims.ID)
	if err != nil {
		return uuid.Nil, errors.Join(ErrInternal, err)
	}
	if owner != claims.Subject {
		return uuid.Nil, ErrRevoked
	}
	return userID, nil
}

func (s *Service) Revoke(token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return err
	}
	if err := s.sessionCacher.Delete(claims.ID); err != nil {
		return errors.Join(ErrInternal, err)
	}
	return nil
}

func (s *Service) parse(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("%w: missing token id", ErrInvalidToken)
	}
	return claims, nil
}
