package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ecoride/rental/pkg/domain/entities"
)

const dateLayout = "2006-01-02"

var hundred = decimal.NewFromInt(100)

// FormatVehicle renders a vehicle as a single catalog line
func FormatVehicle(v *entities.Vehicle) string {
	return fmt.Sprintf("Car ID: %s | Model: %s | Category: %s | Price: LKR %s/day | Status: %s",
		v.ID, v.Model, v.Category.DisplayName, v.DailyRate().StringFixed(2), v.Status)
}

// FormatCustomer renders a customer as a single directory line
func FormatCustomer(c *entities.Customer) string {
	return fmt.Sprintf("Customer ID: %s | Name: %s | NIC/Passport: %s | Contact: %s | Email: %s",
		c.ID, c.Name, c.NicOrPassport, c.ContactNumber, c.Email)
}

// FormatBooking renders a booking as a single ledger line
func FormatBooking(b *entities.Booking) string {
	status := "Active"
	if !b.Active {
		status = "Cancelled"
	}
	return fmt.Sprintf("Booking ID: %s | Customer: %s | Vehicle: %s (%s) | Period: %s to %s | Days: %d | KM: %d | Status: %s",
		b.ID, b.Customer.Name, b.Vehicle.Model, b.Vehicle.ID,
		b.StartDate.Format(dateLayout), b.EndDate.Format(dateLayout),
		b.RentalDays(), b.TotalKilometers, status)
}

// RenderInvoice renders the full fixed-layout invoice report with the
// labeled pricing breakdown. The extra-km and discount lines appear only
// when those charges are non-zero.
func RenderInvoice(inv *entities.Invoice) string {
	b := inv.Booking
	category := b.Vehicle.Category

	var sb strings.Builder
	sb.WriteString("\n╔════════════════════════════════════════════════════════════════╗\n")
	sb.WriteString("║                    ECORIDE CAR RENTAL SYSTEM                   ║\n")
	sb.WriteString("║                         RENTAL INVOICE                         ║\n")
	sb.WriteString("╚════════════════════════════════════════════════════════════════╝\n\n")

	sb.WriteString(fmt.Sprintf("Invoice ID: %s\n", inv.ID))
	sb.WriteString(fmt.Sprintf("Generated: %s\n", inv.GeneratedAt.Format("2006-01-02 15:04:05")))

	writeSection(&sb, "CUSTOMER DETAILS")
	sb.WriteString(fmt.Sprintf("Name: %s\n", b.Customer.Name))
	sb.WriteString(fmt.Sprintf("NIC/Passport: %s\n", b.Customer.NicOrPassport))
	sb.WriteString(fmt.Sprintf("Contact: %s\n", b.Customer.ContactNumber))
	sb.WriteString(fmt.Sprintf("Email: %s\n", b.Customer.Email))

	writeSection(&sb, "VEHICLE DETAILS")
	sb.WriteString(fmt.Sprintf("Car ID: %s\n", b.Vehicle.ID))
	sb.WriteString(fmt.Sprintf("Model: %s\n", b.Vehicle.Model))
	sb.WriteString(fmt.Sprintf("Category: %s\n", category.DisplayName))

	writeSection(&sb, "RENTAL DETAILS")
	sb.WriteString(fmt.Sprintf("Booking ID: %s\n", b.ID))
	sb.WriteString(fmt.Sprintf("Start Date: %s\n", b.StartDate.Format(dateLayout)))
	sb.WriteString(fmt.Sprintf("End Date: %s\n", b.EndDate.Format(dateLayout)))
	sb.WriteString(fmt.Sprintf("Rental Duration: %d days\n", b.RentalDays()))
	sb.WriteString(fmt.Sprintf("Total Kilometers: %d km\n", b.TotalKilometers))

	writeSection(&sb, "PRICING BREAKDOWN")
	sb.WriteString(fmt.Sprintf("Base Rental (LKR %s × %d days)    LKR %12s\n",
		category.DailyRate.StringFixed(2), b.RentalDays(), inv.BasePrice.StringFixed(2)))

	if inv.ExtraKmCharge.IsPositive() {
		extraKm := b.TotalKilometers - category.FreeKmPerDay*int64(b.RentalDays())
		sb.WriteString(fmt.Sprintf("Extra KM Charges (%d km × LKR %s)    LKR %12s\n",
			extraKm, category.ExtraKmRate.StringFixed(2), inv.ExtraKmCharge.StringFixed(2)))
	}
	if inv.DiscountAmount.IsPositive() {
		sb.WriteString(fmt.Sprintf("Discount (10%% for 7+ days)           LKR %12s\n",
			inv.DiscountAmount.Neg().StringFixed(2)))
	}

	taxPercent := category.TaxRate.Mul(hundred)
	sb.WriteString(fmt.Sprintf("Tax (%s%%)                             LKR %12s\n",
		taxPercent.String(), inv.TaxAmount.StringFixed(2)))
	sb.WriteString("                                          ─────────────\n")
	sb.WriteString(fmt.Sprintf("Total Before Deposit                  LKR %12s\n", inv.TotalBeforeDeposit.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Deposit Deduction                     LKR %12s\n", inv.DepositDeduction.Neg().StringFixed(2)))
	sb.WriteString("                                          ═════════════\n")
	sb.WriteString(fmt.Sprintf("FINAL AMOUNT DUE                      LKR %12s\n", inv.FinalAmount.StringFixed(2)))
	sb.WriteString("                                          ═════════════\n")

	sb.WriteString("\nThank you for choosing EcoRide Car Rental System!\n")
	return sb.String()
}

func writeSection(sb *strings.Builder, title string) {
	sb.WriteString("\n─────────────────────────────────────────────────────────────────\n")
	sb.WriteString(title)
	sb.WriteString("\n─────────────────────────────────────────────────────────────────\n")
}
