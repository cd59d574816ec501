package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/abookhq/abook/internal/account"
	"github.com/abookhq/abook/internal/config"
	"github.com/abookhq/abook/internal/logging"
	"github.com/abookhq/abook/internal/model"
	"github.com/abookhq/abook/internal/storage"
)

// sessionService is the slice of the account core the shell needs.
// account.Session satisfies it; tests substitute a fake.
type sessionService interface {
	Register(ctx context.Context, username, password, userID string) (account.Account, error)
	Login(ctx context.Context, username, password string) (account.Account, error)
	Logout(ctx context.Context)
	CurrentAccount() (account.Account, bool)
	IsLoggedIn() bool
}

// App wires the account core, the data binder and the REPL together.
type App struct {
	config  *config.Config
	session sessionService
	log     logging.Logger
	reader  *bufio.Reader

	// model is installed and cleared by the binder through setModel.
	model *model.Model
}

// NewApp builds the application: a file-backed registry hydrated from the
// accounts file, a binder pointed at the data directory, and a session
// joining the two.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	a := &App{
		config: cfg,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
	}

	store := account.NewFileStore(cfg.AccountsPath(), log)
	registry := account.NewRegistry(store, log)
	if err := registry.Load(ctx); err != nil {
		return nil, fmt.Errorf("hydrate account registry: %w", err)
	}

	binder := model.NewBinder(cfg.DataDir, storage.NewJSONStorage(), a.setModel, log)
	a.session = account.NewSession(registry, binder, log)

	return a, nil
}

// setModel is the host hook the binder installs models through.
// A nil model means the user logged out.
func (a *App) setModel(m *model.Model) {
	a.model = m
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

// status renders the prompt fragment showing who is logged in.
func (a *App) status() string {
	if current, ok := a.session.CurrentAccount(); ok {
		return current.Username
	}
	return "logged out"
}

// Run starts the interactive loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}
