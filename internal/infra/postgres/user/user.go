package infra_postgres_user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	infra_pg_errors "github.com/humanbelnik/kinomatch/internal/infra/postgres/pgerr"
	"github.com/humanbelnik/kinomatch/internal/model"
	"github.com/jmoiron/sqlx"
)

const columns = `id, username, email, password, first_name, last_name, bio, profile_image, background_image, invitation_code, created_at`

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type userDTO struct {
	ID              uuid.UUID `db:"id"`
	Username        string    `db:"username"`
	Email           string    `db:"email"`
	Password        []byte    `db:"password"`
	FirstName       string    `db:"first_name"`
	LastName        string    `db:"last_name"`
	Bio             string    `db:"bio"`
	ProfileImage    string    `db:"profile_image"`
	BackgroundImage string    `db:"background_image"`
	InvitationCode  string    `db:"invitation_code"`
	CreatedAt       time.Time `db:"created_at"`
}

func (u userDTO) toDomain() model.User {
	return model.User{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		Password:        u.Password,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Bio:             u.Bio,
		ProfileImage:    u.ProfileImage,
		BackgroundImage: u.BackgroundImage,
		InvitationCode:  u.InvitationCode,
		CreatedAt:       u.CreatedAt,
	}
}

func fromDomain(u model.User) userDTO {
	return userDTO{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		Password:        u.Password,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Bio:             u.Bio,
		ProfileImage:    u.ProfileImage,
		BackgroundImage: u.BackgroundImage,
		InvitationCode:  u.InvitationCode,
		CreatedAt:       u.CreatedAt,
	}
}

func (d *Driver) Create(ctx context.Context, u model.User) error {
	query := `
		INSERT INTO users (` + columns + `)
		VALUES (:id, :username, :email, :password, :first_name, :last_name, :bio,
			:profile_image, :background_image, :invitation_code, :created_at)
	`
	if _, err := d.db.NamedExecContext(ctx, query, fromDomain(u)); err != nil {
		return infra_pg_errors.Map(err)
	}
	return nil
}

func (d *Driver) ByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	return d.getBy(ctx, "id", id)
}

func (d *Driver) ByEmail(ctx context.Context, email string) (model.User, error) {
	return d.getBy(ctx, "email", email)
}

func (d *Driver) ByUsername(ctx context.Context, username string) (model.User, error) {
	return d.getBy(ctx, "username", username)
}

func (d *Driver) ByInvitationCode(ctx context.Context, code string) (model.User, error) {
	return d.getBy(ctx, "invitation_code", code)
}

// column is always one of the constants above.
func (d *Driver) getBy(ctx context.Context, column string, value any) (model.User, error) {
	query := `SELECT ` + columns + ` FROM users WHERE ` + column + ` = $1`

	var dto userDTO
	if err := d.db.GetContext(ctx, &dto, query, value); err != nil {
		return model.User{}, infra_pg_errors.Map(err)
	}
	return dto.toDomain(), nil
}

// ExistsByUsernameOrEmail reports whether another user already holds the
// username or the email.
func (d *Driver) ExistsByUsernameOrEmail(ctx context.Context, username, email string, except uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM users
			WHERE (username = $1 OR email = $2) AND id <> $3
		)
	`
	var exists bool
	if err := d.db.GetContext(ctx, &exists, query, username, email, except); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

type profileUpdateDTO struct {
	ID              uuid.UUID `db:"id"`
	Username        *string   `db:"username"`
	Email           *string   `db:"email"`
	FirstName       *string   `db:"first_name"`
	LastName        *string   `db:"last_name"`
	Bio             *string   `db:"bio"`
	ProfileImage    *string   `db:"profile_image"`
	BackgroundImage *string   `db:"background_image"`
}

// Update applies the non-nil fields and returns the stored user.
func (d *Driver) Update(ctx context.Context, id uuid.UUID, upd model.ProfileUpdate) (model.User, error) {
	query := `
		UPDATE users SET
			username = COALESCE(:username, username),
			email = COALESCE(:email, email),
			first_name = COALESCE(:first_name, first_name),
			last_name = COALESCE(:last_name, last_name),
			bio = COALESCE(:bio, bio),
			profile_image = COALESCE(:profile_image, profile_image),
			background_image = COALESCE(:background_image, background_image)
		WHERE id = :id
		RETURNING ` + columns

	rows, err := d.db.NamedQueryContext(ctx, query, profileUpdateDTO{
		ID:              id,
		Username:        upd.Username,
		Email:           upd.Email,
		FirstName:       upd.FirstName,
		LastName:        upd.LastName,
		Bio:             upd.Bio,
		ProfileImage:    upd.ProfileImage,
		BackgroundImage: upd.BackgroundImage,
	})
	if err != nil {
		return model.User{}, infra_pg_errors.Map(err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return model.User{}, infra_pg_errors.Map(err)
		}
		return model.User{}, model.ErrNotFound
	}

	var dto userDTO
	if err := rows.StructScan(&dto); err != nil {
		return model.User{}, fmt.Errorf("failed to scan user: %w", err)
	}
	return dto.toDomain(), nil
}

func (d *Driver) UpdatePassword(ctx context.Context, id uuid.UUID, hash []byte) error {
	res, err := d.db.ExecContext(ctx, `UPDATE users SET password = $2 WHERE id = $1`, id, hash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return expectAffected(res.RowsAffected())
}

func (d *Driver) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return expectAffected(res.RowsAffected())
}

type summaryDTO struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	ProfileImage string    `db:"profile_image"`
}

// Search matches q case-insensitively against username, email and names.
func (d *Driver) Search(ctx context.Context, q string, exclude uuid.UUID, limit int) ([]model.UserSummary, error) {
	query := `
		SELECT id, username, first_name, last_name, profile_image
		FROM users
		WHERE id <> $2 AND (
			username ILIKE '%' || $1 || '%' OR
			email ILIKE '%' || $1 || '%' OR
			first_name ILIKE '%' || $1 || '%' OR
			last_name ILIKE '%' || $1 || '%'
		)
		ORDER BY username
		LIMIT $3
	`
	var dtos []summaryDTO
	if err := d.db.SelectContext(ctx, &dtos, query, q, exclude, limit); err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	users := make([]model.UserSummary, len(dtos))
	for i, dto := range dtos {
		users[i] = model.UserSummary(dto)
	}
	return users, nil
}

type statsDTO struct {
	ID          uuid.UUID `db:"id"`
	Username    string    `db:"username"`
	Favorites   int       `db:"favorites"`
	AsRequester int       `db:"as_requester"`
	AsAddressee int       `db:"as_addressee"`
}

func (d *Driver) Stats(ctx context.Context, id uuid.UUID) (model.UserStats, error) {
	query := `
		SELECT u.id, u.username,
			(SELECT COUNT(*) FROM user_favorites f WHERE f.user_id = u.id) AS favorites,
			(SELECT COUNT(*) FROM matches m WHERE m.user1_id = u.id) AS as_requester,
			(SELECT COUNT(*) FROM matches m WHERE m.user2_id = u.id) AS as_addressee
		FROM users u
		WHERE u.id = $1
	`
	var dto statsDTO
	if err := d.db.GetContext(ctx, &dto, query, id); err != nil {
		return model.UserStats{}, infra_pg_errors.Map(err)
	}

	return model.UserStats{
		UserID:              dto.ID,
		Username:            dto.Username,
		TotalFavorites:      dto.Favorites,
		TotalMatches:        dto.AsRequester + dto.AsAddressee,
		TotalMatchRequests:  dto.AsRequester,
		TotalMatchResponses: dto.AsAddressee,
	}, nil
}

func expectAffected(n int64, err error) error {
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}
