package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"recs-admin/internal/console"
	"recs-admin/internal/dto"
	"recs-admin/internal/form"
	"recs-admin/internal/transport"
	"recs-admin/pkg/config"
	"recs-admin/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var defaultSeeds = []dto.FormFields{
	{Name: "Blue Widget Combo", ProductID: "10", RecommendedProductID: "20", RecommendationType: "cross-sell"},
	{Name: "Widget Pro Upgrade", ProductID: "10", RecommendedProductID: "11", RecommendationType: "up-sell"},
	{Name: "Similar Gadgets", ProductID: "30", RecommendedProductID: "31", RecommendationType: "similar"},
	{Name: "Gadget Accessories", ProductID: "30", RecommendedProductID: "40", RecommendationType: "accessory"},
	{Name: "Frequently Bought Together", ProductID: "50", RecommendedProductID: "51", RecommendationType: "complementary"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Format); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	if err := newSeedCmd(cfg, appLogger).ExecuteContext(context.Background()); err != nil {
		appLogger.Fatal("Seeding failed", zap.Error(err))
	}
}

func newSeedCmd(cfg *config.Config, appLogger *zap.Logger) *cobra.Command {
	var (
		seedFile string
		parallel int
	)

	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Create sample recommendations through the REST service",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			seeds, err := loadSeeds(seedFile)
			if err != nil {
				return err
			}

			client := transport.NewClient(cfg.Console.RestServiceURL, appLogger.With(zap.String("component", "transport")))
			recConsole := console.New(client, appLogger.With(zap.String("component", "console")))

			appLogger.Info("Seeding recommendations",
				zap.String("rest_service", cfg.Console.RestServiceURL),
				zap.Int("count", len(seeds)),
			)
			if err := seed(c.Context(), recConsole, seeds, parallel, appLogger); err != nil {
				return err
			}
			appLogger.Info("Seeding completed successfully!")
			return nil
		},
	}

	cmd.Flags().StringVar(&seedFile, "file", "", "JSON file with an array of recommendations to create")
	cmd.Flags().IntVar(&parallel, "parallel", 4, "number of concurrent create requests")
	return cmd
}

func loadSeeds(path string) ([]dto.FormFields, error) {
	if path == "" {
		return defaultSeeds, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seeds []dto.FormFields
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return seeds, nil
}

// seed creates every entry, at most parallel at a time. Every entry is
// attempted; the first failure is returned.
func seed(ctx context.Context, c *console.Console, seeds []dto.FormFields, parallel int, appLogger *zap.Logger) error {
	var g errgroup.Group
	if parallel > 0 {
		g.SetLimit(parallel)
	}

	for _, fields := range seeds {
		fields := fields
		g.Go(func() error {
			u := c.Run(ctx, console.CommandCreate, form.FromFields(fields))
			if u.Message != console.MessageSuccess {
				appLogger.Error("Failed to create recommendation", zap.String("name", fields.Name), zap.String("message", u.Message))
				return errors.New(u.Message)
			}
			appLogger.Info("Recommendation created", zap.Int("id", u.Record.ID), zap.String("name", u.Record.Name))
			return nil
		})
	}
	return g.Wait()
}
