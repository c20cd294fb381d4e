package services

import (
	"io"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/ecoride/rental/pkg/domain/entities"
	"github.com/ecoride/rental/pkg/infrastructure/repositories/memory"
)

// testClock is a settable clock for pinning "today" in temporal rules
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func testLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}

func compactPetrolCategory() entities.Category {
	return entities.Category{
		Code:         entities.CompactPetrol,
		DisplayName:  "Compact Petrol Car",
		DailyRate:    decimal.NewFromInt(5000),
		FreeKmPerDay: 100,
		ExtraKmRate:  decimal.NewFromInt(50),
		TaxRate:      decimal.NewFromFloat(0.10),
	}
}

func hybridCategory() entities.Category {
	return entities.Category{
		Code:         entities.Hybrid,
		DisplayName:  "Hybrid Car",
		DailyRate:    decimal.NewFromInt(7500),
		FreeKmPerDay: 150,
		ExtraKmRate:  decimal.NewFromInt(60),
		TaxRate:      decimal.NewFromFloat(0.12),
	}
}

// fixture wires all four services over fresh stores with a settable clock
type fixture struct {
	clock     *testClock
	vehicles  *memory.VehicleRepository
	catalog   *CatalogService
	customers *CustomerService
	bookings  *BookingService
	invoices  *InvoiceService
}

func newFixture(today time.Time) *fixture {
	clock := &testClock{now: today}
	logger := testLogger()

	vehicleRepo := memory.NewVehicleRepository(8)
	customerRepo := memory.NewCustomerRepository(8)
	bookingRepo := memory.NewBookingRepository(8)
	invoiceRepo := memory.NewInvoiceRepository(8)

	return &fixture{
		clock:     clock,
		vehicles:  vehicleRepo,
		catalog:   NewCatalogService(vehicleRepo, logger),
		customers: NewCustomerService(customerRepo, logger),
		bookings:  NewBookingServiceWithClock(bookingRepo, vehicleRepo, entities.DefaultRefundableDeposit, logger, clock.Now),
		invoices:  NewInvoiceServiceWithClock(invoiceRepo, logger, clock.Now),
	}
}
