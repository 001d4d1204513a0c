package repository

import (
	"context"

	"github.com/UgurucanDuman/Autonova/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IListingrepo interface {
	Insert(ctx context.Context, l model.Listing) (uuid.UUID, error)
	CountActiveByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type Listingrepo struct {
	pool *pgxpool.Pool
}

func NewListingrepo(pool *pgxpool.Pool) *Listingrepo {
	return &Listingrepo{
		pool: pool,
	}
}

func (lr *Listingrepo) Insert(ctx context.Context, l model.Listing) (uuid.UUID, error) {
	const q = `
		INSERT INTO listings (
			user_id, brand, model, year, mileage, color,
			price, currency, fuel_type, transmission, location, description,
			body_type, engine_size, power, doors, condition,
			features, warranty, negotiable, exchange, image_keys,
			created_at
		)
		VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17,
			$18, $19, $20, $21, $22,
			NOW()
		)
		RETURNING id;
	`

	var id uuid.UUID
	err := lr.pool.QueryRow(ctx, q,
		l.UserID, l.Brand, l.Model, l.Year, l.Mileage, l.Color,
		l.Price, l.Currency, l.FuelType, l.Transmission, l.Location, l.Description,
		l.BodyType, l.EngineSize, l.Power, l.Doors, l.Condition,
		l.Features, l.Warranty, l.Negotiable, l.Exchange, l.ImageKeys,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (lr *Listingrepo) CountActiveByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	const q = `
		SELECT COUNT(*)
		FROM listings l
		WHERE l.user_id = $1
		  AND l.deleted_at IS NULL;
	`

	var count int
	if err := lr.pool.QueryRow(ctx, q, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
