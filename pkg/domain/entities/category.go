package entities

import "github.com/shopspring/decimal"

// CategoryCode identifies a vehicle pricing tier
type CategoryCode string

const (
	CompactPetrol CategoryCode = "COMPACT_PETROL"
	Hybrid        CategoryCode = "HYBRID"
	Electric      CategoryCode = "ELECTRIC"
	LuxurySUV     CategoryCode = "LUXURY_SUV"
)

// Category carries the pricing parameters of a vehicle tier. Tier values
// are configuration data loaded at startup; the engine treats them as
// immutable once a vehicle carries them.
type Category struct {
	Code         CategoryCode
	DisplayName  string
	DailyRate    decimal.Decimal
	FreeKmPerDay int64
	ExtraKmRate  decimal.Decimal
	TaxRate      decimal.Decimal
}

// String method for CategoryCode
func (c CategoryCode) String() string {
	return string(c)
}
