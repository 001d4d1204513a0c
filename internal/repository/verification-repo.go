package repository

import (
	"context"

	"github.com/UgurucanDuman/Autonova/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IVerificationrepo interface {
	ListWithUsers(ctx context.Context) ([]model.Verification, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type Verificationrepo struct {
	pool *pgxpool.Pool
}

func NewVerificationrepo(pool *pgxpool.Pool) *Verificationrepo {
	return &Verificationrepo{
		pool: pool,
	}
}

// ListWithUsers fetches every pending verification joined with the
// owning user's display name and account email, newest first.
func (vr *Verificationrepo) ListWithUsers(ctx context.Context) ([]model.Verification, error) {
	const q = `
		SELECT
			v.id,
			v.user_id,
			v.email,
			v.code,
			v.attempts,
			v.expires_at,
			v.created_at,
			COALESCE(u.full_name, ''),
			COALESCE(u.email, '')
		FROM email_verifications v
		LEFT JOIN users u ON u.id = v.user_id
		ORDER BY v.created_at DESC;
	`

	rows, err := vr.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	verifications := []model.Verification{}
	for rows.Next() {
		var v model.Verification
		if err := rows.Scan(
			&v.ID,
			&v.UserID,
			&v.Email,
			&v.Code,
			&v.Attempts,
			&v.ExpiresAt,
			&v.CreatedAt,
			&v.UserFullName,
			&v.UserEmail,
		); err != nil {
			return nil, err
		}
		verifications = append(verifications, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return verifications, nil
}

func (vr *Verificationrepo) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	const q = `
		DELETE FROM email_verifications
		WHERE user_id = $1;
	`

	tag, err := vr.pool.Exec(ctx, q, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
