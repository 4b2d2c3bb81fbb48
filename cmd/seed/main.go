// Command seed writes baseline content into the configured database:
// built-in defaults plus optional page bodies from a markdown directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	cms "github.com/kallosgym/cms"
	"github.com/kallosgym/cms/internal/seed"
)

func main() {
	dsn := flag.String("dsn", "file:kallos.db?_fk=1", "SQLite DSN")
	pagesDir := flag.String("pages", "", "directory of <slug>.<lang>.md page files")
	flag.Parse()

	if err := run(*dsn, *pagesDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(dsn, pagesDir string) error {
	cfg := cms.DefaultConfig()
	cfg.Database.DSN = dsn
	cfg.Media.Backend = cms.MediaBackendMemory
	cfg.SeedDefaults = false

	module, err := cms.New(cfg)
	if err != nil {
		return err
	}
	defer module.Dispose()

	ctx := context.Background()
	if err := module.Init(ctx); err != nil {
		return err
	}

	seeder := seed.New(module.Store(), nil)
	if err := seeder.Defaults(ctx); err != nil {
		return err
	}
	if pagesDir != "" {
		if err := seeder.Pages(ctx, os.DirFS(pagesDir)); err != nil {
			return err
		}
	}

	fmt.Println("seeded")
	return nil
}
