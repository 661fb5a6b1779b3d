package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/vdtan/hoso/internal/cli"
	"github.com/vdtan/hoso/internal/db"
	"github.com/vdtan/hoso/internal/importer"
	"github.com/vdtan/hoso/internal/repository"
	"github.com/vdtan/hoso/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env in the working directory overrides nothing already set.
	_ = godotenv.Load()

	// DB path: env var or default ~/.hoso/hoso.db
	dbPath := os.Getenv("HOSO_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".hoso", "hoso.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	recordRepo := repository.NewSQLiteRecordRepo(database)
	unitRepo := repository.NewSQLiteUnitRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// HOSO_LOG enables structured use-case logging on stderr.
	var observers []service.UseCaseObserver
	if os.Getenv("HOSO_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	searchSvc := service.NewSearchService(recordRepo, unitRepo, observers...)

	app := &cli.App{
		Records: service.NewRecordService(recordRepo, unitRepo),
		Units:   service.NewUnitService(unitRepo),
		Search:  searchSvc,
		Stats:   service.NewStatsService(searchSvc, unitRepo, observers...),
		Export:  service.NewExportService(searchSvc, unitRepo, observers...),
		Import:  importer.NewImporter(uow),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
