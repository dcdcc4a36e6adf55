package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/pixkit/pkg/pg"
)

// Unique constraint names from the users migration.
const (
	constraintCPF   = "users_cpf_key"
	constraintEmail = "users_email_key"
)

// DB is the subset of *pgxpool.Pool used by Repository.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository implements Storage on PostgreSQL.
type Repository struct {
	db DB
}

func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

const userColumns = `id, name, email, cpf, password_hash, profile_picture_url, profile_picture_key, created_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.CPF,
		&u.PasswordHash,
		&u.ProfilePicture,
		&u.ProfilePictureKey,
		&u.CreatedAt,
	); err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repository) CreateUser(ctx context.Context, u *User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID, u.Name, u.Email, u.CPF, u.PasswordHash, u.ProfilePicture, u.ProfilePictureKey, u.CreatedAt,
	)
	if err != nil {
		if constraint, ok := pg.DuplicateKeyConstraint(err); ok {
			switch constraint {
			case constraintCPF:
				return ErrCPFInUse
			case constraintEmail:
				return ErrEmailInUse
			}
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *Repository) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("select user by id: %w", err)
	}
	return u, err
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("select user by email: %w", err)
	}
	return u, err
}

func (r *Repository) CheckUnique(ctx context.Context, cpf, email string) (bool, bool, error) {
	var cpfTaken, emailTaken bool
	err := r.db.QueryRow(ctx,
		`SELECT
			EXISTS (SELECT 1 FROM users WHERE cpf = $1),
			EXISTS (SELECT 1 FROM users WHERE email = $2)`,
		cpf, email,
	).Scan(&cpfTaken, &emailTaken)
	if err != nil {
		return false, false, fmt.Errorf("check user uniqueness: %w", err)
	}
	return cpfTaken, emailTaken, nil
}

func (r *Repository) UpdateProfilePicture(ctx context.Context, id uuid.UUID, url, key string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET profile_picture_url = $2, profile_picture_key = $3 WHERE id = $1`,
		id, url, key,
	)
	if err != nil {
		return fmt.Errorf("update profile picture: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
