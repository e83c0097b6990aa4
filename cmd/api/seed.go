package main

import (
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/handyman-marketplace/internal/config"
	ucCatalog "github.com/BruksfildServices01/handyman-marketplace/internal/usecase/catalog"
)

var seedForce bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the development catalog (services and categories)",
	Long: `Upserts the built-in services, sub-services, pricing and categories.
Running it twice leaves the catalog unchanged. Refused when ENV=production
unless --force is given.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "seed even when ENV=production")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	a, err := buildApp(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	return seedCatalog(cmd, a, cfg)
}

func seedCatalog(cmd *cobra.Command, a *app, cfg *config.Config) error {
	refuse := cfg.IsProduction() && !seedForce

	services, err := ucCatalog.NewSeedServices(
		a.deps.Catalog,
		ucCatalog.DefaultServices,
		refuse,
		a.deps.CatalogInvalidator,
		a.deps.Audit,
		a.deps.Log,
	).Execute(cmd.Context())
	if err != nil {
		return err
	}

	categories, err := ucCatalog.NewSeedCategories(
		a.deps.Catalog,
		ucCatalog.DefaultCategories,
		refuse,
		a.deps.Audit,
	).Execute(cmd.Context())
	if err != nil {
		return err
	}

	cmd.Printf("Seeded %d services and %d categories.\n", len(services), len(categories))
	return nil
}
