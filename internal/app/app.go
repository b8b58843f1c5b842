package app

import (
	"io"
	"log/slog"
	"os"

	"atm-teller/internal/config"
	"atm-teller/internal/handler"
	"atm-teller/internal/repository"
	"atm-teller/internal/service"
)

// App wires the record store, the engine and the console for one run.
type App struct {
	store  *repository.Store
	menu   *handler.Menu
	logger *slog.Logger
}

// New creates the store file if needed and builds the object graph.
func New(cfg *config.Config, logger *slog.Logger, in io.Reader, out io.Writer) (*App, error) {
	store := repository.NewStore(cfg.DataPath, logger, repository.WithAtomicWrites(cfg.AtomicWrites))
	if err := store.Init(); err != nil {
		return nil, err
	}

	logger.Info("Account store ready", "path", store.Path(), "atomic_writes", cfg.AtomicWrites)

	accounts := store.Account(nil)
	console := handler.NewConsole(in, out, cfg.BankName, cfg.ClearScreen)

	accountService := service.NewAccountService(accounts, console, cfg.MaxAttempts, logger)
	transactionService := service.NewTransactionService(accounts, console, logger)

	return &App{
		store:  store,
		menu:   handler.NewMenu(console, accountService, transactionService, logger),
		logger: logger,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info("Run started", "path", a.store.Path())
	if err := a.menu.Run(); err != nil {
		return err
	}
	a.logger.Info("Run finished", "path", a.store.Path())
	return nil
}

// NewLogger builds the process logger. Stdout belongs to the menu, so
// logs go to cfg.LogFile as JSON or to stderr as text. The returned
// closer must be called on exit.
func NewLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewJSONHandler(f, opts)), f, nil
}
