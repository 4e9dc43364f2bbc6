package usecase_user

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/internal/model"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInternal         = errors.New("internal error")
	ErrUserNotFound     = errors.New("user not found")
	ErrUserExists       = errors.New("username or email already taken")
	ErrWrongPassword    = errors.New("wrong password")
	ErrPasswordRequired = errors.New("password required")
	ErrQueryRequired    = errors.New("search query required")
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

//go:generate mockery --name=UserRepository --output=./mocks/user/repository --filename=repository.go
type UserRepository interface {
	ByID(ctx context.Context, id uuid.UUID) (model.User, error)
	ByUsername(ctx context.Context, username string) (model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username string, email string, except uuid.UUID) (bool, error)
	Update(ctx context.Context, id uuid.UUID, upd model.ProfileUpdate) (model.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hash []byte) error
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, q string, exclude uuid.UUID, limit int) ([]model.UserSummary, error)
	Stats(ctx context.Context, id uuid.UUID) (model.UserStats, error)
}

//go:generate mockery --name=FavoriteLister --output=./mocks/user/favorites --filename=favorites.go
type FavoriteLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Favorite, error)
}

//go:generate mockery --name=ImageStorage --output=./mocks/user/storage --filename=storage.go
type ImageStorage interface {
	Save(ctx context.Context, obj model.FileObject) (string, error)
	Delete(ctx context.Context, url string) error
}

// ProfileChange is a profile edit. Uploads replace the matching image URL in
// Fields.
type ProfileChange struct {
	Fields           model.ProfileUpdate
	ProfileUpload    *model.Image
	BackgroundUpload *model.Image
}

type Profile struct {
	User      model.User
	Favorites []model.Favorite
}

type Usecase struct {
	users     UserRepository
	favorites FavoriteLister
	images    ImageStorage

	hashCost int
	logger   *slog.Logger
}

type Option func(*Usecase)

func WithHashCost(cost int) Option {
	return func(u *Usecase) {
		u.hashCost = cost
	}
}

func New(users UserRepository, favorites FavoriteLister, images ImageStorage, opts ...Option) *Usecase {
	u := &Usecase{
		users:     users,
		favorites: favorites,
		images:    images,
		hashCost:  bcrypt.DefaultCost,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *Usecase) Profile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	user, err := u.users.ByID(ctx, userID)
	if err != nil {
		return Profile{}, mapErr(err)
	}
	return u.withFavorites(ctx, user)
}

func (u *Usecase) PublicProfile(ctx context.Context, username string) (Profile, error) {
	user, err := u.users.ByUsername(ctx, username)
	if err != nil {
		return Profile{}, mapErr(err)
	}
	return u.withFavorites(ctx, user)
}

func (u *Usecase) withFavorites(ctx context.Context, user model.User) (Profile, error) {
	favorites, err := u.favorites.ListByUser(ctx, user.ID)
	if err != nil {
		return Profile{}, errors.Join(ErrInternal, err)
	}
	return Profile{User: user, Favorites: favorites}, nil
}

// UpdateProfile applies change and returns the stored user. Images that were
// replaced or cleared are removed from storage afterwards.
func (u *Usecase) UpdateProfile(ctx context.Context, userID uuid.UUID, change ProfileChange) (model.User, error) {
	current, err := u.users.ByID(ctx, userID)
	if err != nil {
		return model.User{}, mapErr(err)
	}

	upd := change.Fields
	upd.Username = nonBlank(upd.Username)
	upd.Email = nonBlank(upd.Email)
	upd.FirstName = nonBlank(upd.FirstName)
	upd.LastName = nonBlank(upd.LastName)
	upd.Bio = nonBlank(upd.Bio)

	if upd.Username != nil || upd.Email != nil {
		taken, err := u.users.ExistsByUsernameOrEmail(ctx, deref(upd.Username), deref(upd.Email), userID)
		if err != nil {
			return model.User{}, errors.Join(ErrInternal, err)
		}
		if taken {
			return model.User{}, ErrUserExists
		}
	}

	if change.ProfileUpload != nil {
		url, err := u.upload(ctx, userID, model.ImageProfile, *change.ProfileUpload)
		if err != nil {
			return model.User{}, err
		}
		upd.ProfileImage = &url
	}
	if change.BackgroundUpload != nil {
		url, err := u.upload(ctx, userID, model.ImageUserBackground, *change.BackgroundUpload)
		if err != nil {
			return model.User{}, err
		}
		upd.BackgroundImage = &url
	}

	updated, err := u.users.Update(ctx, userID, upd)
	if err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			return model.User{}, ErrUserExists
		}
		return model.User{}, mapErr(err)
	}

	if upd.ProfileImage != nil {
		u.dropImage(ctx, current.ProfileImage, updated.ProfileImage)
	}
	if upd.BackgroundImage != nil {
		u.dropImage(ctx, current.BackgroundImage, updated.BackgroundImage)
	}
	return updated, nil
}

func (u *Usecase) upload(ctx context.Context, userID uuid.UUID, kind model.ImageKind, img model.Image) (string, error) {
	img.Kind = kind
	img.Owner = userID.String()
	url, err := u.images.Save(ctx, img)
	if err != nil {
		return "", errors.Join(ErrInternal, err)
	}
	return url, nil
}

func (u *Usecase) dropImage(ctx context.Context, previous, current string) {
	if previous == "" || previous == current {
		return
	}
	if err := u.images.Delete(ctx, previous); err != nil {
		u.logger.Warn("failed to delete previous image",
			slog.String("url", previous),
			slog.String("error", err.Error()))
	}
}

func (u *Usecase) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	if current == "" || next == "" {
		return ErrPasswordRequired
	}
	if err := u.checkPassword(ctx, userID, current); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), u.hashCost)
	if err != nil {
		return errors.Join(ErrInternal, err)
	}
	if err := u.users.UpdatePassword(ctx, userID, hash); err != nil {
		return mapErr(err)
	}
	return nil
}

func (u *Usecase) DeleteAccount(ctx context.Context, userID uuid.UUID, password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if err := u.checkPassword(ctx, userID, password); err != nil {
		return err
	}
	if err := u.users.Delete(ctx, userID); err != nil {
		return mapErr(err)
	}
	return nil
}

func (u *Usecase) checkPassword(ctx context.Context, userID uuid.UUID, password string) error {
	user, err := u.users.ByID(ctx, userID)
	if err != nil {
		return mapErr(err)
	}
	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(password)); err != nil {
		return ErrWrongPassword
	}
	return nil
}

func (u *Usecase) Stats(ctx context.Context, userID uuid.UUID) (model.UserStats, error) {
	stats, err := u.users.Stats(ctx, userID)
	if err != nil {
		return model.UserStats{}, mapErr(err)
	}
	return stats, nil
}

// Search looks users up by username, email or name, never returning the
// caller. Non-positive limits fall back to the default.
func (u *Usecase) Search(ctx context.Context, callerID uuid.UUID, q string, limit int) ([]model.UserSummary, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, ErrQueryRequired
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	limit = min(limit, maxSearchLimit)

	users, err := u.users.Search(ctx, q, callerID, limit)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	return users, nil
}

func mapErr(err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return ErrUserNotFound
	}
	return errors.Join(ErrInternal, err)
}

func nonBlank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
