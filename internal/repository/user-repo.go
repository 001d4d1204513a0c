package repository

import (
	"context"
	"errors"

	"github.com/UgurucanDuman/Autonova/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IUserrepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	ConfirmEmail(ctx context.Context, id uuid.UUID) error
}

type Userrepo struct {
	pool *pgxpool.Pool
}

func NewUserrepo(pool *pgxpool.Pool) *Userrepo {
	return &Userrepo{
		pool: pool,
	}
}

func (ur *Userrepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	const q = `
		SELECT
			u.id,
			u.email,
			u.full_name,
			u.email_confirmed,
			u.created_at,
			u.updated_at,
			u.deleted_at
		FROM users u
		WHERE u.id = $1
		LIMIT 1;
	`

	var u model.User
	err := ur.pool.QueryRow(ctx, q, id).Scan(
		&u.ID,
		&u.Email,
		&u.FullName,
		&u.EmailConfirmed,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &u, nil
}

// ConfirmEmail marks the user's email address confirmed. This is the
// admin-side override; the code-entry path lives with the sender.
func (ur *Userrepo) ConfirmEmail(ctx context.Context, id uuid.UUID) error {
	const q = `
		UPDATE users
		SET email_confirmed = TRUE,
		    updated_at = NOW()
		WHERE id = $1;
	`

	tag, err := ur.pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
