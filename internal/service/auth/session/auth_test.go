package session_auth

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type SessionAuthUnitSuite struct {
	suite.Suite
}

type memoryCache struct {
	mu   sync.Mutex
	data map[string]string
	err  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string]string)}
}

func (c *memoryCache) Set(key string, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.data[key] = value
	return nil
}

func (c *memoryCache) Get(key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data[key], c.err
}

func (c *memoryCache) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return c.err
}

func (s *SessionAuthUnitSuite) TestIssueAndValidate(t provider.T) {
	svc := New("secret", time.Hour, newMemoryCache())
	userID := uuid.New()

	token, err := svc.Issue(userID)
	assert.NoError(t, err)

	got, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, got)
}

func (s *SessionAuthUnitSuite) TestRevokedTokenIsRejected(t provider.T) {
	svc := New("secret", time.Hour, newMemoryCache())
	token, _ := svc.Issue(uuid.New())

	assert.NoError(t, svc.Revoke(token))

	_, err := svc.Validate(token)
	assert.ErrorIs(t, err, ErrRevoked)
}

func (s *SessionAuthUnitSuite) TestRejectsForeignTokens(t provider.T) {
	t.Parallel()

	svc := New("secret", time.Hour, newMemoryCache())
	other := New("other-secret", time.Hour, newMemoryCache())
	foreign, _ := other.Issue(uuid.New())

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{RegisteredClaims: jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}})
	expiredToken, _ := expired.SignedString([]byte("secret"))

	noneToken, _ := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	for name, token := range map[string]string{
		"Should reject other secret": foreign,
		"Should reject expired":      expiredToken,
		"Should reject alg none":     noneToken,
		"Should reject garbage":      "not-a-jwt",
	} {
		t.Run(name, func(t provider.T) {
			t.Parallel()
			_, err := svc.Validate(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func (s *SessionAuthUnitSuite) TestCacheFailureIsInternal(t provider.T) {
	cache := newMemoryCache()
	cache.err = errors.New("redis down")
	svc := New("secret", time.Hour, cache)

	_, err := svc.Issue(uuid.New())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestSessionAuthSuite(t *testing.T) {
	suite.RunSuite(t, new(SessionAuthUnitSuite))
}
