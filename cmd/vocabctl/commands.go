package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/willianpsouza/VocabularyPlatform/internal/adapters/importer"
	"github.com/willianpsouza/VocabularyPlatform/internal/adapters/postgres"
	"github.com/willianpsouza/VocabularyPlatform/internal/app"
	"github.com/willianpsouza/VocabularyPlatform/internal/domain"
	"github.com/willianpsouza/VocabularyPlatform/internal/pkg/config"
)

type services struct {
	domains     *app.DomainService
	maintenance *app.MaintenanceService
}

// withServices connects to the store, runs fn and closes the pool.
func withServices(cmd *cobra.Command, fn func(ctx context.Context, s services) error) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	pool, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	domainRepo := postgres.NewDomainRepository(pool, cfg.Database.QueryTimeout)
	vocabRepo := postgres.NewVocabularyRepository(pool, cfg.Database.QueryTimeout)
	return fn(ctx, services{
		domains:     app.NewDomainService(domainRepo),
		maintenance: app.NewMaintenanceService(domainRepo, vocabRepo),
	})
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vocabctl",
		Short:         "Maintenance routines for the vocabulary store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(seedCmd(), dedupeCmd(), wipeCmd(), dumpCmd(), importCmd())
	return root
}

func seedCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the catalog domains and vocabulary that are missing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			return withServices(cmd, func(ctx context.Context, s services) error {
				report, err := s.maintenance.Seed(ctx, catalog)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Database has been seeded (%s)\n", report)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML catalog to seed instead of the built-in one")
	return cmd
}

func loadCatalog(path string) (*app.Catalog, error) {
	if path == "" {
		return app.DefaultCatalog()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return app.LoadCatalog(f)
}

func dedupeCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "dedupe",
		Short: "Keep the first domain of every duplicate name and delete the rest",
		Long: "Groups domains by case-insensitive name, keeps the oldest of each group and deletes " +
			"the others together with their vocabulary. This cannot be undone.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(cmd, func(ctx context.Context, s services) error {
				report, err := s.maintenance.Dedupe(ctx, dryRun)
				if err != nil {
					return err
				}
				verb := "removed"
				if dryRun {
					verb = "would remove"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleanup completed: %d duplicate groups, %s %d domains\n",
					report.Groups, verb, report.Removed)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report duplicates without deleting anything")
	return cmd
}

func wipeCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Delete all vocabulary and all domains",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("refusing to wipe without --yes")
			}
			return withServices(cmd, func(ctx context.Context, s services) error {
				if err := s.maintenance.Wipe(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "All vocabulary and domains deleted")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the wipe")
	return cmd
}

func dumpCmd() *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print every domain with its vocabulary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(cmd, func(ctx context.Context, s services) error {
				domains, err := s.domains.List(ctx, domain.ListDomainsOptions{
					IncludeVocabulary: true,
					Language:          language,
				})
				if err != nil {
					return err
				}
				writeDump(cmd.OutOrStdout(), domains)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&language, "language", "", "only print vocabulary in this language")
	return cmd
}

func writeDump(w io.Writer, domains []domain.Domain) {
	fmt.Fprintln(w, "=== Database Contents ===")
	for _, d := range domains {
		fmt.Fprintf(w, "\nDomain: %s (%s)\n", d.Name, d.ID)
		fmt.Fprintf(w, "Description: %s\n", d.Description)
		fmt.Fprintln(w, "Vocabulary:")
		for _, v := range d.Vocabularies {
			fmt.Fprintf(w, "\n  Word: %s [%s]\n", v.Word, v.Language)
			fmt.Fprintf(w, "  Definition: %s\n", v.Definition)
			if len(v.Examples) > 0 {
				fmt.Fprintln(w, "  Examples:")
				for i, example := range v.Examples {
					fmt.Fprintf(w, "    %d. %s\n", i+1, example)
				}
			}
		}
		fmt.Fprintln(w, "\n"+strings.Repeat("-", 50))
	}
}

func importCmd() *cobra.Command {
	var (
		domainName string
		language   string
		sheet      string
		noHeader   bool
	)

	cmd := &cobra.Command{
		Use:   "import <file.xlsx|file.csv>",
		Short: "Import vocabulary from a spreadsheet",
		Long: "Columns: word, definition, examples (separated by \"" + importer.ExampleSeparator +
			"\"), domain, language. Rows that already exist are skipped.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := importer.DefaultConfig()
			cfg.SheetName = sheet
			cfg.SkipHeader = !noHeader

			rows, err := importer.ReadFile(args[0], cfg)
			if err != nil {
				return err
			}
			if language != "" {
				for i := range rows {
					if rows[i].Language == "" {
						rows[i].Language = language
					}
				}
			}

			return withServices(cmd, func(ctx context.Context, s services) error {
				report, err := s.maintenance.Import(ctx, rows, domainName)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Imported %d rows: %d created, %d skipped, %d errors\n",
					len(rows), report.Created, report.Skipped, len(report.Errors))
				for _, e := range report.Errors {
					fmt.Fprintln(out, "  "+e)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&domainName, "domain", "", "domain for rows without one")
	cmd.Flags().StringVar(&language, "language", "", "language for rows without one (default en)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "sheet to read (default: first sheet)")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "the first row holds data, not column names")
	return cmd
}
