// Package tariffrepo persists the single pricing-configuration row.
//
// Patches are applied under SELECT ... FOR UPDATE so concurrent writers are
// linearized: each one reads the latest row, overwrites only the fields its
// patch names and bumps the version. Field-level writes to unrelated fields
// therefore never clobber each other.
package tariffrepo

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fulfillment/internal/core/domain/model/tariff"
	"fulfillment/internal/pkg/errs"
)

// There is exactly one configuration row.
const singletonID = 1

// TariffDTO is the database row for the pricing configuration.
type TariffDTO struct {
	ID                   int64           `gorm:"primaryKey"`
	AirRatePerKg         decimal.Decimal `gorm:"type:numeric"`
	SeaRatePerCubicMeter decimal.Decimal `gorm:"type:numeric"`
	MarginPercent        decimal.Decimal `gorm:"type:numeric"`
	FxRateUSD            decimal.Decimal `gorm:"type:numeric"`
	FxRateCNY            decimal.Decimal `gorm:"type:numeric"`
	AutoUpdateFiat       bool
	AutoUpdateStablecoin bool
	Version              int64
	UpdatedAt            time.Time
}

// TableName overrides GORM's default naming to use "tariffs".
func (TariffDTO) TableName() string {
	return "tariffs"
}

// GormTariffStore implements ports.TariffStore over the singleton row.
type GormTariffStore struct {
	db *gorm.DB
}

// NewGormTariffStore creates a tariff store.
func NewGormTariffStore(db *gorm.DB) *GormTariffStore {
	return &GormTariffStore{db: db}
}

// Seed inserts the configuration row when it does not exist yet. Called once
// at startup; an existing row is left untouched.
func (s *GormTariffStore) Seed(ctx context.Context, initial tariff.Tariff) error {
	dto := fromDomain(initial)
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}

// Get retrieves the current configuration.
func (s *GormTariffStore) Get(ctx context.Context) (tariff.Tariff, error) {
	var dto TariffDTO
	if err := s.db.WithContext(ctx).First(&dto, "id = ?", singletonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tariff.Tariff{}, errs.NewObjectNotFoundError("tariff", "singleton")
		}
		return tariff.Tariff{}, err
	}

	return toDomain(dto), nil
}

// Patch applies a field-level patch under the row lock and returns the
// updated record.
func (s *GormTariffStore) Patch(ctx context.Context, patch tariff.Patch) (tariff.Tariff, error) {
	var updated tariff.Tariff

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dto TariffDTO
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&dto, "id = ?", singletonID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("tariff", "singleton")
			}
			return err
		}

		next, err := toDomain(dto).Apply(patch)
		if err != nil {
			return err
		}

		nextDTO := fromDomain(next)
		if err = tx.Model(&TariffDTO{}).
			Where("id = ?", singletonID).
			Select("*").
			Updates(&nextDTO).Error; err != nil {
			return err
		}

		updated = next
		return nil
	})
	if err != nil {
		return tariff.Tariff{}, err
	}

	return updated, nil
}

func fromDomain(t tariff.Tariff) TariffDTO {
	return TariffDTO{
		ID:                   singletonID,
		AirRatePerKg:         t.AirRatePerKg,
		SeaRatePerCubicMeter: t.SeaRatePerCubicMeter,
		MarginPercent:        t.MarginPercent,
		FxRateUSD:            t.FxRateUSD,
		FxRateCNY:            t.FxRateCNY,
		AutoUpdateFiat:       t.AutoUpdateFiat,
		AutoUpdateStablecoin: t.AutoUpdateStablecoin,
		Version:              t.Version,
		UpdatedAt:            t.UpdatedAt,
	}
}

func toDomain(dto TariffDTO) tariff.Tariff {
	return tariff.Tariff{
		AirRatePerKg:         dto.AirRatePerKg,
		SeaRatePerCubicMeter: dto.SeaRatePerCubicMeter,
		MarginPercent:        dto.MarginPercent,
		FxRateUSD:            dto.FxRateUSD,
		FxRateCNY:            dto.FxRateCNY,
		AutoUpdateFiat:       dto.AutoUpdateFiat,
		AutoUpdateStablecoin: dto.AutoUpdateStablecoin,
		Version:              dto.Version,
		UpdatedAt:            dto.UpdatedAt,
	}
}
