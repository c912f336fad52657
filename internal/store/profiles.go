package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/krishisahayak/pkg/models"
)

// ErrProfileNotFound is returned when no profile exists for a farmer ID.
var ErrProfileNotFound = errors.New("farmer profile not found")

// ProfileStore persists farmer profiles.
type ProfileStore interface {
	Get(ctx context.Context, farmerID string) (models.FarmerProfile, error)
	Upsert(ctx context.Context, profile models.FarmerProfile) (models.FarmerProfile, error)
}

// PostgresProfileStore stores profiles in the farmer_profiles table.
type PostgresProfileStore struct {
	db *sql.DB
}

func NewPostgresProfileStore(db *sql.DB) *PostgresProfileStore {
	return &PostgresProfileStore{db: db}
}

func (s *PostgresProfileStore) Get(ctx context.Context, farmerID string) (models.FarmerProfile, error) {
	const query = `
		SELECT id, phone, name, language, state, district, soil_type,
		       current_crop, land_size, irrigation_type, market_location,
		       created_at, updated_at
		FROM farmer_profiles
		WHERE id = $1`

	var p models.FarmerProfile
	err := s.db.QueryRowContext(ctx, query, farmerID).Scan(
		&p.ID, &p.Phone, &p.Name, &p.Language, &p.State, &p.District,
		&p.SoilType, &p.CurrentCrop, &p.LandSize, &p.IrrigationType,
		&p.MarketLocation, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.FarmerProfile{}, ErrProfileNotFound
	}
	if err != nil {
		return models.FarmerProfile{}, fmt.Errorf("failed to get farmer profile: %w", err)
	}
	return p, nil
}

func (s *PostgresProfileStore) Upsert(ctx context.Context, p models.FarmerProfile) (models.FarmerProfile, error) {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	const query = `
		INSERT INTO farmer_profiles (
			id, phone, name, language, state, district, soil_type,
			current_crop, land_size, irrigation_type, market_location,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			phone = EXCLUDED.phone,
			name = EXCLUDED.name,
			language = EXCLUDED.language,
			state = EXCLUDED.state,
			district = EXCLUDED.district,
			soil_type = EXCLUDED.soil_type,
			current_crop = EXCLUDED.current_crop,
			land_size = EXCLUDED.land_size,
			irrigation_type = EXCLUDED.irrigation_type,
			market_location = EXCLUDED.market_location,
			updated_at = EXCLUDED.updated_at`

	_, err := s.db.ExecContext(ctx, query,
		p.ID, p.Phone, p.Name, p.Language, p.State, p.District, p.SoilType,
		p.CurrentCrop, p.LandSize, p.IrrigationType, p.MarketLocation,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return models.FarmerProfile{}, fmt.Errorf("failed to upsert farmer profile: %w", err)
	}
	return p, nil
}
