// Package commands wires the stores, services and interactive menu into
// the ecoride command.
package commands

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ecoride/rental/pkg/application/services"
	"github.com/ecoride/rental/pkg/infrastructure/config"
	"github.com/ecoride/rental/pkg/infrastructure/repositories/memory"
	"github.com/ecoride/rental/pkg/interfaces/cli"
)

var (
	ratesFile string
	verbose   bool
	noSeed    bool
)

var rootCmd = &cobra.Command{
	Use:   "ecoride",
	Short: "EcoRide car rental console",
	Long:  `Interactive console for the EcoRide car rental system: manage the fleet, register customers, create bookings and generate priced invoices. All state is in-memory and lost at exit.`,
	RunE:  runRoot,
}

func init() {
	rootCmd.Flags().StringVar(&ratesFile, "rates", "", "path to a YAML rate-card file overriding the built-in pricing tiers")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&noSeed, "no-seed", false, "start with an empty fleet instead of the sample vehicles")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	logger := log.New()
	logger.SetLevel(log.InfoLevel)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	rateCard, err := config.Load(ratesFile)
	if err != nil {
		return err
	}

	vehicleRepo := memory.NewVehicleRepository(16)
	customerRepo := memory.NewCustomerRepository(16)
	bookingRepo := memory.NewBookingRepository(32)
	invoiceRepo := memory.NewInvoiceRepository(32)

	catalog := services.NewCatalogService(vehicleRepo, logger)
	customers := services.NewCustomerService(customerRepo, logger)
	bookings := services.NewBookingService(bookingRepo, vehicleRepo, rateCard.DepositAmount(), logger)
	invoices := services.NewInvoiceService(invoiceRepo, logger)

	if !noSeed {
		if err := seedFleet(catalog, rateCard); err != nil {
			return fmt.Errorf("seeding sample fleet: %w", err)
		}
	}

	menu := cli.NewMenu(catalog, customers, bookings, invoices, rateCard, cmd.InOrStdin(), cmd.OutOrStdout())
	menu.Run()
	return nil
}
