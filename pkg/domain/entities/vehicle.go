package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Vehicle represents a rental fleet vehicle
type Vehicle struct {
	ID       string
	Model    string
	Category Category
	Status   AvailabilityStatus
}

// NewVehicle creates a validated Vehicle in the Available state
func NewVehicle(id, model string, category Category) (*Vehicle, error) {
	if id == "" {
		return nil, fmt.Errorf("vehicle id cannot be empty")
	}
	if model == "" {
		return nil, fmt.Errorf("vehicle model cannot be empty")
	}
	if category.Code == "" {
		return nil, fmt.Errorf("vehicle category cannot be empty")
	}

	return &Vehicle{
		ID:       id,
		Model:    model,
		Category: category,
		Status:   Available,
	}, nil
}

// DailyRate returns the daily rental fee of the vehicle's tier
func (v *Vehicle) DailyRate() decimal.Decimal {
	return v.Category.DailyRate
}
