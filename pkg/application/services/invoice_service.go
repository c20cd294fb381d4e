package services

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ecoride/rental/pkg/domain/entities"
	"github.com/ecoride/rental/pkg/domain/repositories"
	domainservices "github.com/ecoride/rental/pkg/domain/services"
)

// InvoiceService derives priced invoices from bookings. Generation is
// idempotent per booking: the first call prices and stores a snapshot,
// every later call returns that snapshot unchanged.
type InvoiceService struct {
	invoices repositories.InvoiceRepository
	pricing  *domainservices.PricingCalculator
	clock    Clock
	logger   *log.Logger
}

// NewInvoiceService creates an invoice service using the ambient system
// clock for generation timestamps.
func NewInvoiceService(invoices repositories.InvoiceRepository, logger *log.Logger) *InvoiceService {
	return NewInvoiceServiceWithClock(invoices, logger, time.Now)
}

// NewInvoiceServiceWithClock creates an invoice service with an injected
// clock.
func NewInvoiceServiceWithClock(invoices repositories.InvoiceRepository, logger *log.Logger, clock Clock) *InvoiceService {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &InvoiceService{
		invoices: invoices,
		pricing:  domainservices.NewPricingCalculator(),
		clock:    clock,
		logger:   logger,
	}
}

// Generate returns the invoice for a booking, computing and storing it on
// first request. Invoices are never recomputed, so later edits to the
// booking do not alter an already-issued invoice.
func (s *InvoiceService) Generate(booking *entities.Booking) (*entities.Invoice, error) {
	if booking == nil {
		return nil, fmt.Errorf("cannot generate invoice: booking is nil")
	}

	existing, err := s.invoices.GetByBookingID(booking.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, entities.ErrInvoiceNotFound) {
		return nil, err
	}

	invoice, err := entities.NewInvoice(booking, s.clock(), s.pricing.Price(booking))
	if err != nil {
		return nil, err
	}
	s.invoices.Add(invoice)

	s.logger.WithFields(log.Fields{
		"invoice_id":   invoice.ID,
		"booking_id":   booking.ID,
		"final_amount": invoice.FinalAmount.StringFixed(2),
	}).Info("invoice generated")
	return invoice, nil
}

// Find returns the invoice with the given id
func (s *InvoiceService) Find(id string) (*entities.Invoice, error) {
	return s.invoices.Get(id)
}

// FindByBookingID returns the invoice generated for a booking, if any
func (s *InvoiceService) FindByBookingID(bookingID string) (*entities.Invoice, error) {
	return s.invoices.GetByBookingID(bookingID)
}

// ListAll returns every invoice as a fresh slice
func (s *InvoiceService) ListAll() []*entities.Invoice {
	return s.invoices.All()
}
