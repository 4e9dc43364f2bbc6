package usecase_auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/internal/model"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInternal           = errors.New("internal error")
	ErrUserExists         = errors.New("username or email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrCodeRequired       = errors.New("invitation code required")
	ErrInvalidCode        = errors.New("invalid invitation code")
	ErrCodesUnavailable   = errors.New("could not allocate invitation code")
)

//go:generate mockery --name=UserRepository --output=./mocks/auth/users --filename=users.go
type UserRepository interface {
	Create(ctx context.Context, u model.User) error
	ByID(ctx context.Context, id uuid.UUID) (model.User, error)
	ByEmail(ctx context.Context, email string) (model.User, error)
	ByInvitationCode(ctx context.Context, code string) (model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username string, email string, except uuid.UUID) (bool, error)
}

//go:generate mockery --name=MatchCreator --output=./mocks/auth/matches --filename=matches.go
type MatchCreator interface {
	Create(ctx context.Context, m model.Match) error
}

//go:generate mockery --name=SessionService --output=./mocks/auth/session --filename=session.go
type SessionService interface {
	Issue(userID uuid.UUID) (string, error)
	Revoke(token string) error
}

type Registration struct {
	Username       string
	Email          string
	Password       string
	FirstName      string
	LastName       string
	InvitationCode string
}

type Usecase struct {
	users    UserRepository
	matches  MatchCreator
	sessions SessionService

	hashCost int
	now      func() time.Time
	logger   *slog.Logger
}

type Option func(*Usecase)

func WithHashCost(cost int) Option {
	return func(u *Usecase) {
		u.hashCost = cost
	}
}

func New(users UserRepository, matches MatchCreator, sessions SessionService, opts ...Option) *Usecase {
	u := &Usecase{
		users:    users,
		matches:  matches,
		sessions: sessions,
		hashCost: bcrypt.DefaultCost,
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Register creates the account and signs it in. A valid invitation code of
// another user creates an already accepted match with that user.
func (u *Usecase) Register(ctx context.Context, r Registration) (model.User, string, error) {
	taken, err := u.users.ExistsByUsernameOrEmail(ctx, r.Username, r.Email, uuid.Nil)
	if err != nil {
		return model.User{}, "", errors.Join(ErrInternal, err)
	}
	if taken {
		return model.User{}, "", ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), u.hashCost)
	if err != nil {
		return model.User{}, "", errors.Join(ErrInternal, err)
	}

	user := model.User{
		ID:        uuid.New(),
		Username:  r.Username,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Password:  hash,
		CreatedAt: u.now().UTC(),
	}
	if user, err = u.createWithCode(ctx, user); err != nil {
		return model.User{}, "", err
	}

	if code := strings.TrimSpace(r.InvitationCode); code != "" {
		u.matchInviter(ctx, code, user)
	}

	token, err := u.sessions.Issue(user.ID)
	if err != nil {
		return model.User{}, "", errors.Join(ErrInternal, err)
	}
	return user, token, nil
}

// Invitation codes may collide, so creation is retried with a fresh code.
func (u *Usecase) createWithCode(ctx context.Context, user model.User) (model.User, error) {
	var retries = 3
	for retries > 0 {
		code, err := newInvitationCode()
		if err != nil {
			return model.User{}, errors.Join(ErrInternal, err)
		}
		user.InvitationCode = code

		err = u.users.Create(ctx, user)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, model.ErrAlreadyExists) {
			return model.User{}, errors.Join(ErrInternal, err)
		}

		taken, existsErr := u.users.ExistsByUsernameOrEmail(ctx, user.Username, user.Email, uuid.Nil)
		if existsErr != nil {
			return model.User{}, errors.Join(ErrInternal, existsErr)
		}
		if taken {
			return model.User{}, ErrUserExists
		}
		retries--
	}
	return model.User{}, ErrCodesUnavailable
}

func (u *Usecase) matchInviter(ctx context.Context, code string, user model.User) {
	inviter, err := u.users.ByInvitationCode(ctx, code)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			u.logger.Warn("invitation lookup failed", slog.String("error", err.Error()))
		}
		return
	}
	if inviter.ID == user.ID {
		return
	}

	now := u.now().UTC()
	if err := u.matches.Create(ctx, model.Match{
		ID:         uuid.New(),
		User1ID:    inviter.ID,
		User2ID:    user.ID,
		Status:     model.MatchAccepted,
		CreatedAt:  now,
		AcceptedAt: &now,
	}); err != nil {
		u.logger.Warn("failed to create invitation match",
			slog.String("inviter_id", inviter.ID.String()),
			slog.String("user_id", user.ID.String()),
			slog.String("error", err.Error()))
	}
}

func (u *Usecase) Login(ctx context.Context, email, password string) (model.User, string, error) {
	user, err := u.users.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, "", ErrInvalidCredentials
		}
		return model.User{}, "", errors.Join(ErrInternal, err)
	}
	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(password)); err != nil {
		return model.User{}, "", ErrInvalidCredentials
	}

	token, err := u.sessions.Issue(user.ID)
	if err != nil {
		return model.User{}, "", errors.Join(ErrInternal, err)
	}
	return user, token, nil
}

func (u *Usecase) Logout(token string) error {
	if err := u.sessions.Revoke(token); err != nil {
		return errors.Join(ErrInternal, err)
	}
	return nil
}

func (u *Usecase) Me(ctx context.Context, userID uuid.UUID) (model.User, error) {
	user, err := u.users.ByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, errors.Join(ErrInternal, err)
	}
	return user, nil
}

func (u *Usecase) InvitationCode(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := u.Me(ctx, userID)
	if err != nil {
		return "", err
	}
	if user.InvitationCode == "" {
		return "", ErrInvalidCode
	}
	return user.InvitationCode, nil
}

// ValidateCode returns the owner of an invitation code.
func (u *Usecase) ValidateCode(ctx context.Context, code string) (model.User, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return model.User{}, ErrCodeRequired
	}
	user, err := u.users.ByInvitationCode(ctx, code)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, ErrInvalidCode
		}
		return model.User{}, errors.Join(ErrInternal, err)
	}
	return user, nil
}

// 8 random bytes as 16 uppercase hex characters.
func newInvitationCode() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}
