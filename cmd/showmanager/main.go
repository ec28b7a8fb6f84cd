package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/showmanager/internal/cli"
	"github.com/alexanderramin/showmanager/internal/config"
	"github.com/alexanderramin/showmanager/internal/db"
	"github.com/alexanderramin/showmanager/internal/repository"
	"github.com/alexanderramin/showmanager/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}

	logw, err := cfg.OpenLog()
	if err != nil {
		return err
	}
	defer logw.Close()
	observer := service.NewLogUseCaseObserver(logw, level)

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	sessionRepo := repository.NewSQLiteSessionRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Sessions: service.NewSessionService(sessionRepo, uow, observer),
		Reports:  service.NewReportService(sessionRepo, observer),
		Exports:  service.NewExportService(sessionRepo, uow, cfg.ExportDir, observer),
		Backups:  service.NewBackupService(database, cfg.DBPath, cfg.BackupDir, observer),
	}

	// The bare command opens the TUI only on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
