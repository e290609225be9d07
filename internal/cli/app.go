package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/avelichko/schoolinv/internal/config"
	"github.com/avelichko/schoolinv/internal/logging"
	"github.com/avelichko/schoolinv/internal/models"
	"github.com/avelichko/schoolinv/internal/selection"
	"github.com/avelichko/schoolinv/internal/services"
	"github.com/avelichko/schoolinv/internal/store"

	_ "modernc.org/sqlite"
)

// App wires the configuration, services and terminal I/O of the inventory
// CLI. One view is current at a time; navigation commands switch it, and the
// per-view selection sets survive until explicitly cleared or consumed.
type App struct {
	config   *config.Config
	log      logging.Logger
	users    services.UserService
	registry services.RegistryService
	catalog  services.CatalogService
	vision   *services.Vision
	reader   *bufio.Reader

	view models.View

	recordSel  *selection.Set[string]
	catalogSel *selection.Set[string]
	fileSel    *selection.Set[string]

	// last rendered listings, so select commands can address rows by number
	lastRecords []models.InventoryRecord
	lastCatalog []models.CatalogItem
	lastGroups  []models.FileGroup
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.Default())

	db, err := store.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	app := &App{
		config:     c,
		log:        logger,
		users:      services.NewUserService(db, logger),
		registry:   services.NewRegistryService(db, logger, c.SyncDelay),
		catalog:    services.NewCatalogService(db, logger, c.HeaderAliases),
		vision:     services.NewVision(ctx, c.GeminiAPIKey, c.GeminiModel, logger),
		reader:     bufio.NewReader(os.Stdin),
		view:       models.ViewWelcome,
		recordSel:  selection.New[string](),
		catalogSel: selection.New[string](),
		fileSel:    selection.New[string](),
	}

	if err := app.hydrate(ctx); err != nil {
		return nil, err
	}
	return app, nil
}

func (a *App) hydrate(ctx context.Context) error {
	if err := a.users.Hydrate(ctx); err != nil {
		return err
	}
	if err := a.registry.Hydrate(ctx); err != nil {
		return err
	}
	return a.catalog.Hydrate(ctx)
}

func (a *App) Run(ctx context.Context) {
	defer a.registry.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.users.Current() != nil
}

// navigate switches the current view and drops selections tied to the view
// being left.
func (a *App) navigate(v models.View) {
	if a.view == v {
		return
	}
	switch a.view {
	case models.ViewRegistry:
		a.recordSel.Clear()
	case models.ViewImport:
		a.catalogSel.Clear()
		a.fileSel.Clear()
	}
	a.view = v
	printlnFn(v.Title())
}

func (a *App) getStatus() string {
	s := ""
	if u := a.users.Current(); u != nil {
		s = u.Email + " "
	}
	s = s + a.view.Title()
	return fmt.Sprintf("(%s)", s)
}
