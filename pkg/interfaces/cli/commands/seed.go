package commands

import (
	"github.com/ecoride/rental/pkg/application/services"
	"github.com/ecoride/rental/pkg/domain/entities"
	"github.com/ecoride/rental/pkg/infrastructure/config"
)

// sampleFleet is the demonstration fleet registered at startup
var sampleFleet = []struct {
	id       string
	model    string
	category entities.CategoryCode
}{
	{"V001", "Toyota Aqua", entities.CompactPetrol},
	{"V002", "Honda Fit", entities.CompactPetrol},
	{"V003", "Toyota Prius", entities.Hybrid},
	{"V004", "Honda Insight", entities.Hybrid},
	{"V005", "Nissan Leaf", entities.Electric},
	{"V006", "Tesla Model 3", entities.Electric},
	{"V007", "BMW X5", entities.LuxurySUV},
	{"V008", "Mercedes GLE", entities.LuxurySUV},
}

// seedFleet registers the sample vehicles using the configured tiers.
// Vehicles whose tier is absent from a custom rate card are skipped.
func seedFleet(catalog *services.CatalogService, rateCard config.RateCard) error {
	for _, s := range sampleFleet {
		category, err := rateCard.CategoryByCode(s.category)
		if err != nil {
			continue
		}
		if _, err := catalog.Register(s.id, s.model, category); err != nil {
			return err
		}
	}
	return nil
}
