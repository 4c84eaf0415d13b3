package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/bahm1979/gestion-locative-backend/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailTakenByOther(ctx context.Context, email string, userID uuid.UUID) (bool, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, nom, email string, avatar *string) error
}

type userRepo struct {
	db DB
}

func NewUserRepository(db DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, nom, email, password_hash, role, avatar, created_at)
		VALUES ($1,$2,$3,$4,$5,$6, NOW())
	`, u.ID, u.Nom, u.Email, u.PasswordHash, u.Role, u.Avatar)
	return err
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+" WHERE id=$1", id)
	return scanUser(row)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+" WHERE email=$1", email)
	return scanUser(row)
}

func (r *userRepo) EmailTakenByOther(ctx context.Context, email string, userID uuid.UUID) (bool, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx,
		`SELECT id FROM users WHERE email=$1 AND id<>$2`, email, userID,
	).Scan(&id)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *userRepo) UpdateProfile(ctx context.Context, id uuid.UUID, nom, email string, avatar *string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET nom=$1, email=$2, avatar=$3 WHERE id=$4`,
		nom, email, avatar, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func baseSelectUser() string {
	return `SELECT id, nom, email, password_hash, role, avatar, created_at FROM users`
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Nom, &u.Email, &u.PasswordHash, &u.Role, &u.Avatar, &u.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
