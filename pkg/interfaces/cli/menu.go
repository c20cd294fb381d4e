// Package cli implements the interactive console for the rental engine.
// It only parses input, invokes core operations and renders results; no
// business rule lives here.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ecoride/rental/pkg/application/services"
	"github.com/ecoride/rental/pkg/domain/entities"
	"github.com/ecoride/rental/pkg/infrastructure/config"
)

// Menu drives the interactive session over the four core services
type Menu struct {
	catalog   *services.CatalogService
	customers *services.CustomerService
	bookings  *services.BookingService
	invoices  *services.InvoiceService
	rateCard  config.RateCard

	in  *bufio.Scanner
	out io.Writer
}

// NewMenu creates a menu bound to the given streams
func NewMenu(catalog *services.CatalogService, customers *services.CustomerService, bookings *services.BookingService, invoices *services.InvoiceService, rateCard config.RateCard, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		catalog:   catalog,
		customers: customers,
		bookings:  bookings,
		invoices:  invoices,
		rateCard:  rateCard,
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// Run loops until the user exits or input ends
func (m *Menu) Run() {
	for {
		m.printf("\n========== ECORIDE CAR RENTAL SYSTEM ==========\n")
		m.printf("1. Vehicle Management\n")
		m.printf("2. Customer Management\n")
		m.printf("3. Booking Management\n")
		m.printf("4. Invoices\n")
		m.printf("0. Exit\n")

		choice, ok := m.promptInt("Enter choice: ")
		if !ok {
			return
		}
		switch choice {
		case 1:
			m.vehicleMenu()
		case 2:
			m.customerMenu()
		case 3:
			m.bookingMenu()
		case 4:
			m.invoiceMenu()
		case 0:
			m.printf("Goodbye!\n")
			return
		default:
			m.printf("Invalid choice.\n")
		}
	}
}

func (m *Menu) vehicleMenu() {
	m.printf("\n--- Vehicle Management ---\n")
	m.printf("1. Add vehicle\n")
	m.printf("2. Update vehicle\n")
	m.printf("3. Delete vehicle\n")
	m.printf("4. Change availability\n")
	m.printf("5. List all vehicles\n")
	m.printf("6. List available vehicles\n")
	m.printf("7. List vehicles by category\n")

	choice, ok := m.promptInt("Enter choice: ")
	if !ok {
		return
	}
	switch choice {
	case 1:
		id, ok1 := m.promptString("Car ID: ")
		model, ok2 := m.promptString("Model: ")
		category, ok3 := m.promptCategory()
		if !ok1 || !ok2 || !ok3 {
			return
		}
		v, err := m.catalog.Register(id, model, category)
		if err != nil {
			m.printf("Error: %v\n", err)
			return
		}
		m.printf("Registered: %s\n", FormatVehicle(v))
	case 2:
		id, ok1 := m.promptString("Car ID: ")
		model, ok2 := m.promptString("New model: ")
		category, ok3 := m.promptCategory()
		if !ok1 || !ok2 || !ok3 {
			return
		}
		if err := m.catalog.Update(id, model, category); err != nil {
			m.printf("Error: %v\n", err)
			return
		}
		m.printf("Vehicle updated.\n")
	case 3:
		id, ok := m.promptString("Car ID: ")
		if !ok {
			return
		}
		if m.catalog.Remove(id) {
			m.printf("Vehicle removed.\n")
		} else {
			m.printf("No vehicle with ID %s.\n", id)
		}
	case 4:
		id, ok := m.promptString("Car ID: ")
		if !ok {
			return
		}
		status, ok := m.promptStatus()
		if !ok {
			return
		}
		if m.catalog.SetAvailability(id, status) {
			m.printf("Availability set to %s.\n", status)
		} else {
			m.printf("No vehicle with ID %s.\n", id)
		}
	case 5:
		m.printVehicles(m.catalog.ListAll())
	case 6:
		m.printVehicles(m.catalog.ListAvailable())
	case 7:
		category, ok := m.promptCategory()
		if !ok {
			return
		}
		m.printVehicles(m.catalog.ListByCategory(category.Code))
	default:
		m.printf("Invalid choice.\n")
	}
}

func (m *Menu) customerMenu() {
	m.printf("\n--- Customer Management ---\n")
	m.printf("1. Register customer\n")
	m.printf("2. Update customer\n")
	m.printf("3. Find by NIC/passport\n")
	m.printf("4. List all customers\n")

	choice, ok := m.promptInt("Enter choice: ")
	if !ok {
		return
	}
	switch choice {
	case 1:
		nic, ok1 := m.promptString("NIC/Passport: ")
		name, ok2 := m.promptString("Name: ")
		contact, ok3 := m.promptString("Contact number: ")
		email, ok4 := m.promptString("Email: ")
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return
		}
		c, err := m.customers.RegisterOrFetch(nic, name, contact, email)
		if err != nil {
			m.printf("Error: %v\n", err)
			return
		}
		m.printf("%s\n", FormatCustomer(c))
	case 2:
		id, ok1 := m.promptString("Customer ID: ")
		name, ok2 := m.promptString("Name: ")
		contact, ok3 := m.promptString("Contact number: ")
		email, ok4 := m.promptString("Email: ")
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return
		}
		if err := m.customers.Update(id, name, contact, email); err != nil {
			m.printf("Error: %v\n", err)
			return
		}
		m.printf("Customer updated.\n")
	case 3:
		nic, ok := m.promptString("NIC/Passport: ")
		if !ok {
			return
		}
		c, err := m.customers.FindByNicOrPassport(nic)
		if err != nil {
			m.printf("Error: %v\n", err)
			return
		}
		m.printf("%s\n", FormatCustomer(c))
	case 4:
		customers := m.customers.ListAll()
		if len(customers) == 0 {
			m.printf("No customers registered.\n")
		}
		for _, c := range customers {
			m.printf("%s\n", FormatCustomer(c))
		}
	default:
		m.printf("Invalid choice.\n")
	}
}

func (m *Menu) bookingMenu() {
	m.printf("\n--- Booking Management ---\n")
	m.printf("1. Create booking\n")
	m.printf("2. Update booking\n")
	m.printf("3. Cancel booking\n")
	m.printf("4. Find booking by ID\n")
	m.printf("5. Find bookings by customer name\n")
	m.printf("6. Find bookings by customer ID\n")
	m.printf("7. List all bookings\n")
	m.printf("8. List active bookings\n")

	choice, ok := m.promptInt("Enter choice: ")
	if !ok {
		return
	}
	switch choice {
	case 1:
		nic, ok1 := m.promptString("Customer NIC/Passport: ")
		name, ok2 := m.promptString("Customer name: ")
		contact, ok3 := m.promptString("Contact number: ")
		email, ok4 := m.promptString("Email: ")
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return
		}
		customer, err := m.customers.RegisterOrFetch(nic, name, contact, email)
		if err != nil {
			m.printf("Error: %v\n", err)
			return
		}

		vehicleID, ok5 := m.promptString("Car ID: ")
		start, ok6 := m.promptDate("Start date (YYYY-MM-DD): ")
		end, ok7 := m.promptDate("End date (YYYY-MM-DD): ")
		km, ok8 := m.promptInt("Estimated total kilometers: ")
		if !ok5 || !ok6 || !ok7 || !ok8 {
			return
		}
		b, err := m.bookings.Create(customer, vehicleID, start, end, int64(km))
		if err != nil {
			m.printf("Error: %v\n", err)
			return
		}
		m.printf("Created: %s\n", FormatBooking(b))
	case 2:
		id, ok1 := m.promptString("Booking ID: ")
		start, ok2 := m.promptDate("New start date (YYYY-MM-DD): ")
		end, ok3 := m.promptDate("New end date (YYYY-MM-DD): ")
		km, ok4 := m.promptInt("New estimated total kilometers: ")
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return
		}
		if err := m.bookings.Update(id, start, end, int64(km)); err != nil {
			m.printf("Error: %v\n", err)
			return
		}
		m.printf("Booking updated.\n")
	case 3:
		id, ok := m.promptString("Booking ID: ")
		if !ok {
			return
		}
		if err := m.bookings.Cancel(id); err != nil {
			m.printf("Error: %v\n", err)
			return
		}
		m.printf("Booking cancelled. Deposit will be refunded.\n")
	case 4:
		id, ok := m.promptString("Booking ID: ")
		if !ok {
			return
		}
		b, err := m.bookings.Find(id)
		if err != nil {
			m.printf("Error: %v\n", err)
			return
		}
		m.printf("%s\n", FormatBooking(b))
	case 5:
		name, ok := m.promptString("Customer name: ")
		if !ok {
			return
		}
		m.printBookings(m.bookings.FindByCustomerName(name))
	case 6:
		id, ok := m.promptString("Customer ID: ")
		if !ok {
			return
		}
		m.printBookings(m.bookings.FindByCustomerID(id))
	case 7:
		m.printBookings(m.bookings.ListAll())
	case 8:
		m.printBookings(m.bookings.ListActive())
	default:
		m.printf("Invalid choice.\n")
	}
}

func (m *Menu) invoiceMenu() {
	m.printf("\n--- Invoices ---\n")
	m.printf("1. Generate invoice for booking\n")
	m.printf("2. Find invoice by ID\n")
	m.printf("3. List all invoices\n")

	choice, ok := m.promptInt("Enter choice: ")
	if !ok {
		return
	}
	switch choice {
	case 1:
		id, ok := m.promptString("Booking ID: ")
		if !ok {
			return
		}
		b, err := m.bookings.Find(id)
		if err != nil {
			m.printf("Error: %v\n", err)
			return
		}
		inv, err := m.invoices.Generate(b)
		if err != nil {
			m.printf("Error: %v\n", err)
			return
		}
		m.printf("%s", RenderInvoice(inv))
	case 2:
		id, ok := m.promptString("Invoice ID: ")
		if !ok {
			return
		}
		inv, err := m.invoices.Find(id)
		if err != nil {
			m.printf("Error: %v\n", err)
			return
		}
		m.printf("%s", RenderInvoice(inv))
	case 3:
		invoices := m.invoices.ListAll()
		if len(invoices) == 0 {
			m.printf("No invoices generated.\n")
		}
		for _, inv := range invoices {
			m.printf("Invoice ID: %s | Booking: %s | Final Amount: LKR %s\n",
				inv.ID, inv.Booking.ID, inv.FinalAmount.StringFixed(2))
		}
	default:
		m.printf("Invalid choice.\n")
	}
}

func (m *Menu) printVehicles(vehicles []*entities.Vehicle) {
	if len(vehicles) == 0 {
		m.printf("No vehicles.\n")
	}
	for _, v := range vehicles {
		m.printf("%s\n", FormatVehicle(v))
	}
}

func (m *Menu) printBookings(bookings []*entities.Booking) {
	if len(bookings) == 0 {
		m.printf("No bookings.\n")
	}
	for _, b := range bookings {
		m.printf("%s\n", FormatBooking(b))
	}
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

// promptString reads one trimmed line; ok is false when input ended
func (m *Menu) promptString(prompt string) (string, bool) {
	m.printf("%s", prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// promptInt re-prompts until the line parses as an integer
func (m *Menu) promptInt(prompt string) (int, bool) {
	for {
		line, ok := m.promptString(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			m.printf("Please enter a number.\n")
			continue
		}
		return n, true
	}
}

// promptDate re-prompts until the line parses as YYYY-MM-DD
func (m *Menu) promptDate(prompt string) (time.Time, bool) {
	for {
		line, ok := m.promptString(prompt)
		if !ok {
			return time.Time{}, false
		}
		d, err := time.Parse(dateLayout, line)
		if err != nil {
			m.printf("Please use the YYYY-MM-DD format.\n")
			continue
		}
		return d, true
	}
}

// promptCategory lists the configured tiers and re-prompts until one is chosen
func (m *Menu) promptCategory() (entities.Category, bool) {
	table := m.rateCard.CategoryTable()
	for i, c := range table {
		m.printf("%d. %s (LKR %s/day, %d free km/day)\n",
			i+1, c.DisplayName, c.DailyRate.StringFixed(2), c.FreeKmPerDay)
	}
	for {
		n, ok := m.promptInt("Select category: ")
		if !ok {
			return entities.Category{}, false
		}
		if n < 1 || n > len(table) {
			m.printf("Please choose between 1 and %d.\n", len(table))
			continue
		}
		return table[n-1], true
	}
}

// promptStatus re-prompts until an availability status is chosen
func (m *Menu) promptStatus() (entities.AvailabilityStatus, bool) {
	statuses := entities.AllAvailabilityStatuses()
	for i, s := range statuses {
		m.printf("%d. %s\n", i+1, s)
	}
	for {
		n, ok := m.promptInt("Select status: ")
		if !ok {
			return entities.Available, false
		}
		if n < 1 || n > len(statuses) {
			m.printf("Please choose between 1 and %d.\n", len(statuses))
			continue
		}
		return statuses[n-1], true
	}
}
