// Package config loads the externalized pricing configuration. The
// built-in defaults are the contractual rate card; a YAML file may
// override them for a deployment without touching the engine.
package config

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/ecoride/rental/pkg/domain/entities"
)

// CategoryConfig defines one pricing tier of the rate card
type CategoryConfig struct {
	Code         string  `mapstructure:"code"`
	Name         string  `mapstructure:"name"`
	DailyRate    float64 `mapstructure:"daily_rate"`
	FreeKmPerDay int64   `mapstructure:"free_km_per_day"`
	ExtraKmRate  float64 `mapstructure:"extra_km_rate"`
	TaxRate      float64 `mapstructure:"tax_rate"`
}

// RateCard holds all pricing configuration: the category tiers and the
// fixed refundable deposit charged on every booking.
type RateCard struct {
	Categories []CategoryConfig `mapstructure:"categories"`
	Deposit    float64          `mapstructure:"deposit"`
}

// DefaultRateCard returns the built-in rate card. These values are part
// of the observable pricing contract.
func DefaultRateCard() RateCard {
	return RateCard{
		Deposit: 5000,
		Categories: []CategoryConfig{
			{
				Code:         string(entities.CompactPetrol),
				Name:         "Compact Petrol Car",
				DailyRate:    5000,
				FreeKmPerDay: 100,
				ExtraKmRate:  50,
				TaxRate:      0.10,
			},
			{
				Code:         string(entities.Hybrid),
				Name:         "Hybrid Car",
				DailyRate:    7500,
				FreeKmPerDay: 150,
				ExtraKmRate:  60,
				TaxRate:      0.12,
			},
			{
				Code:         string(entities.Electric),
				Name:         "Electric Car",
				DailyRate:    10000,
				FreeKmPerDay: 200,
				ExtraKmRate:  40,
				TaxRate:      0.08,
			},
			{
				Code:         string(entities.LuxurySUV),
				Name:         "Luxury SUV",
				DailyRate:    15000,
				FreeKmPerDay: 250,
				ExtraKmRate:  75,
				TaxRate:      0.15,
			},
		},
	}
}

// Load reads a rate-card file, falling back to the defaults when path is
// empty. The file replaces the defaults wholesale; it is validated before
// use.
func Load(path string) (RateCard, error) {
	if path == "" {
		return DefaultRateCard(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return RateCard{}, fmt.Errorf("reading rate card %s: %w", path, err)
	}

	var card RateCard
	if err := v.Unmarshal(&card); err != nil {
		return RateCard{}, fmt.Errorf("parsing rate card %s: %w", path, err)
	}
	if card.Deposit == 0 {
		card.Deposit = DefaultRateCard().Deposit
	}
	if err := card.Validate(); err != nil {
		return RateCard{}, fmt.Errorf("invalid rate card %s: %w", path, err)
	}
	return card, nil
}

// Validate checks the rate card for usable values.
// Returns nil if every tier is complete and consistent.
func (rc RateCard) Validate() error {
	if len(rc.Categories) == 0 {
		return fmt.Errorf("rate card has no categories")
	}
	if rc.Deposit < 0 {
		return fmt.Errorf("deposit cannot be negative")
	}
	seen := make(map[string]bool, len(rc.Categories))
	for i, c := range rc.Categories {
		if c.Code == "" {
			return fmt.Errorf("category %d: code is required", i)
		}
		if seen[c.Code] {
			return fmt.Errorf("category %d (%s): duplicate code", i, c.Code)
		}
		seen[c.Code] = true
		if c.Name == "" {
			return fmt.Errorf("category %d (%s): name is required", i, c.Code)
		}
		if c.DailyRate <= 0 {
			return fmt.Errorf("category %d (%s): daily rate must be positive", i, c.Code)
		}
		if c.FreeKmPerDay < 0 {
			return fmt.Errorf("category %d (%s): free km per day cannot be negative", i, c.Code)
		}
		if c.ExtraKmRate < 0 {
			return fmt.Errorf("category %d (%s): extra km rate cannot be negative", i, c.Code)
		}
		if c.TaxRate < 0 || c.TaxRate >= 1 {
			return fmt.Errorf("category %d (%s): tax rate must be a fraction in [0, 1)", i, c.Code)
		}
	}
	return nil
}

// CategoryTable converts the configured tiers to domain categories
func (rc RateCard) CategoryTable() []entities.Category {
	out := make([]entities.Category, 0, len(rc.Categories))
	for _, c := range rc.Categories {
		out = append(out, entities.Category{
			Code:         entities.CategoryCode(c.Code),
			DisplayName:  c.Name,
			DailyRate:    decimal.NewFromFloat(c.DailyRate),
			FreeKmPerDay: c.FreeKmPerDay,
			ExtraKmRate:  decimal.NewFromFloat(c.ExtraKmRate),
			TaxRate:      decimal.NewFromFloat(c.TaxRate),
		})
	}
	return out
}

// CategoryByCode resolves one configured tier
func (rc RateCard) CategoryByCode(code entities.CategoryCode) (entities.Category, error) {
	for _, c := range rc.CategoryTable() {
		if c.Code == code {
			return c, nil
		}
	}
	return entities.Category{}, fmt.Errorf("unknown vehicle category: %s", code)
}

// DepositAmount returns the configured refundable deposit
func (rc RateCard) DepositAmount() decimal.Decimal {
	return decimal.NewFromFloat(rc.Deposit)
}
