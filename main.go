// laptopshop serves the laptop catalog and upgrade quote API.
//
// Usage:
//
//	laptopshop serve
//	laptopshop products --q nitro --page 2
//	laptopshop facets [--admin]
//	laptopshop quote --ram-capacity 8GB --ram-bus 3200MHz --ssd-capacity 512GB
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"laptopshop/app"
	"laptopshop/config"
	"laptopshop/logx"
	"laptopshop/models"
	"laptopshop/service"
	"laptopshop/utils"
)

var version = "dev"

func main() {
	cliApp := &cli.App{
		Name:    "laptopshop",
		Usage:   "Laptop catalog and upgrade quote service",
		Version: version,
		Commands: []*cli.Command{
			serveCommand(),
			productsCommand(),
			facetsCommand(),
			quoteCommand(),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads configuration, initializes logging and wires the application
func setup(ctx context.Context) (*config.Config, *app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logx.Init(logx.LoggerOpts{Environment: cfg.Environment()})
	if cfg.EnvFile != "" {
		logx.Info().Str("file", cfg.EnvFile).Msg("Loaded environment variables (overriding system variables)")
	}

	application, err := app.Initialize(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, application, nil
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Start the HTTP API server",
		Action: runServe,
	}
}

func runServe(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, application, err := setup(ctx)
	if err != nil {
		return err
	}
	defer application.Close()

	// Warm the snapshot cache so the first request does not pay for it
	if _, _, err := application.Snapshots.Load(ctx); err != nil {
		logx.Warn().Err(err).Msg("⚠️ Initial snapshot load failed, will retry on first request")
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           application.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logx.Info().Str("addr", cfg.Addr()).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
	}

	logx.Info().Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func productsCommand() *cli.Command {
	return &cli.Command{
		Name:  "products",
		Usage: "List one catalog page",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "q", Usage: "Search text"},
			&cli.Int64SliceFlag{Name: "brand", Usage: "Brand id (repeatable)"},
			&cli.StringSliceFlag{Name: "cpu", Usage: "CPU label (repeatable)"},
			&cli.Int64Flag{Name: "min-price", Usage: "Minimum price in minor units"},
			&cli.Int64Flag{Name: "max-price", Usage: "Maximum price in minor units"},
			&cli.IntFlag{Name: "page", Value: 1, Usage: "Page number"},
			&cli.IntFlag{Name: "page-size", Usage: "Page size (defaults to PAGE_SIZE)"},
			&cli.BoolFlag{Name: "admin", Usage: "Include inactive products"},
		},
		Action: runProducts,
	}
}

func runProducts(c *cli.Context) error {
	_, application, err := setup(c.Context)
	if err != nil {
		return err
	}
	defer application.Close()

	criteria := models.NewFilterCriteria()
	criteria.SearchText = c.String("q")
	criteria.Brands = c.Int64Slice("brand")
	criteria.CPUs = c.StringSlice("cpu")
	if c.IsSet("min-price") {
		criteria.PriceRange.Min = c.Int64("min-price")
	}
	if c.IsSet("max-price") {
		criteria.PriceRange.Max = c.Int64("max-price")
	}

	surface := service.SurfacePublic
	if c.Bool("admin") {
		surface = service.SurfaceAdmin
	}

	resp, err := application.Catalog.Browse(c.Context, surface, criteria, c.Int("page"), c.Int("page-size"))
	if err != nil {
		return err
	}

	fmt.Printf("Page %d/%d (%d products)\n", resp.Page.PageNumber, resp.Page.TotalPages, resp.Page.TotalItems)
	for _, item := range resp.Page.Items {
		fmt.Printf("  #%-5d %-40s %20s  %s\n", item.ID, item.Name, utils.FormatMoney(item.Price, application.Currency), item.Status)
	}
	return nil
}

func facetsCommand() *cli.Command {
	return &cli.Command{
		Name:  "facets",
		Usage: "Print the catalog facets as JSON",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "admin", Usage: "Include inactive products"},
		},
		Action: runFacets,
	}
}

func runFacets(c *cli.Context) error {
	_, application, err := setup(c.Context)
	if err != nil {
		return err
	}
	defer application.Close()

	surface := service.SurfacePublic
	if c.Bool("admin") {
		surface = service.SurfaceAdmin
	}

	facets, err := application.Catalog.Facets(c.Context, surface)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(facets)
}

func quoteCommand() *cli.Command {
	return &cli.Command{
		Name:  "quote",
		Usage: "Price a RAM/SSD upgrade",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "ram-capacity", Usage: "RAM capacity, e.g. 8GB"},
			&cli.StringFlag{Name: "ram-type", Usage: "RAM type (default DDR4)"},
			&cli.StringFlag{Name: "ram-bus", Usage: "RAM bus, e.g. 3200MHz"},
			&cli.StringFlag{Name: "ssd-capacity", Usage: "SSD capacity, e.g. 512GB"},
			&cli.StringFlag{Name: "ssd-type", Usage: "SSD type (default NVMe)"},
		},
		Action: runQuote,
	}
}

func runQuote(c *cli.Context) error {
	_, application, err := setup(c.Context)
	if err != nil {
		return err
	}
	defer application.Close()

	req := models.UpgradeRequest{
		RAMCapacity: c.String("ram-capacity"),
		RAMType:     c.String("ram-type"),
		RAMBus:      c.String("ram-bus"),
		SSDCapacity: c.String("ssd-capacity"),
		SSDType:     c.String("ssd-type"),
	}
	if req.RAMCapacity == "" && req.SSDCapacity == "" {
		return cli.Exit("nothing to quote: set --ram-capacity and/or --ssd-capacity", 2)
	}

	quote, err := application.Upgrade.QuoteRequest(c.Context, req)
	if err != nil {
		return err
	}

	printLeg("RAM", quote.RAM, application.Currency)
	printLeg("SSD", quote.SSD, application.Currency)
	fmt.Printf("%-6s %20s\n", "Total", utils.FormatMoney(quote.Total, application.Currency))
	if !quote.Complete() {
		fmt.Println("Some components are not in the price list; the total is incomplete.")
	}
	return nil
}

func printLeg(name string, leg models.PriceLeg, cur utils.Currency) {
	switch {
	case !leg.Requested:
		fmt.Printf("%-6s %20s\n", name, "-")
	case !leg.Matched:
		fmt.Printf("%-6s %20s\n", name, "not available")
	default:
		fmt.Printf("%-6s %20s  (component #%d, %s)\n", name, utils.FormatMoney(leg.Price, cur), leg.ComponentID, leg.Tier)
	}
}
