package landingpage

import (
	"log/slog"
	"time"

	"storefront/contexts/content-studio/landing-page-service/adapters/catalog"
	httpadapter "storefront/contexts/content-studio/landing-page-service/adapters/http"
	"storefront/contexts/content-studio/landing-page-service/adapters/memory"
	"storefront/contexts/content-studio/landing-page-service/application/commands"
	"storefront/contexts/content-studio/landing-page-service/application/queries"
	"storefront/contexts/content-studio/landing-page-service/ports"
)

// Module is the composition surface for the landing page service.
// Runtime wiring should consume Handler; Store is exposed for tests/inspection.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Catalog            ports.Catalog
	Kits               ports.KitRepository
	Pages              ports.PageRepository
	Idempotency        ports.IdempotencyStore
	Clock              ports.Clock
	IDGenerator        ports.IDGenerator
	BlockIDs           ports.BlockIDGenerator
	IdempotencyTTL     time.Duration
	PreviewConcurrency int
	Logger             *slog.Logger
}

// NewModule wires landing page use cases against explicit ports.
func NewModule(deps Dependencies) Module {
	handler := httpadapter.Handler{
		ListTemplates: queries.ListTemplatesUseCase{Catalog: deps.Catalog},
		GetTemplate:   queries.GetTemplateUseCase{Catalog: deps.Catalog},
		ListPacks:     queries.ListPacksUseCase{Catalog: deps.Catalog},
		ListKits: queries.ListKitsUseCase{
			Kits:   deps.Kits,
			Logger: deps.Logger,
		},
		UpsertKit: commands.UpsertKitUseCase{
			Kits:   deps.Kits,
			Clock:  deps.Clock,
			Logger: deps.Logger,
		},
		AssemblePage: commands.AssemblePageUseCase{
			Catalog:        deps.Catalog,
			Kits:           deps.Kits,
			Pages:          deps.Pages,
			Idempotency:    deps.Idempotency,
			Clock:          deps.Clock,
			IDGenerator:    deps.IDGenerator,
			BlockIDs:       deps.BlockIDs,
			IdempotencyTTL: deps.IdempotencyTTL,
			Logger:         deps.Logger,
		},
		GeneratePack: commands.GeneratePackUseCase{
			Catalog:        deps.Catalog,
			Kits:           deps.Kits,
			Pages:          deps.Pages,
			Idempotency:    deps.Idempotency,
			Clock:          deps.Clock,
			IDGenerator:    deps.IDGenerator,
			BlockIDs:       deps.BlockIDs,
			IdempotencyTTL: deps.IdempotencyTTL,
			Logger:         deps.Logger,
		},
		PreviewPacks: queries.PreviewPacksUseCase{
			Catalog:     deps.Catalog,
			Kits:        deps.Kits,
			BlockIDs:    deps.BlockIDs,
			Concurrency: deps.PreviewConcurrency,
			Logger:      deps.Logger,
		},
		GetPage:   queries.GetPageUseCase{Pages: deps.Pages},
		ListPages: queries.ListPagesUseCase{Pages: deps.Pages},
		Logger:    deps.Logger,
	}
	return Module{Handler: handler}
}

// NewInMemoryModule wires the service against the in-memory store, seeded with
// the catalog's starter kits. A non-positive previewConcurrency uses the
// preview default.
func NewInMemoryModule(library *catalog.Catalog, previewConcurrency int, logger *slog.Logger) Module {
	store := memory.NewStore(library.StarterKits(), logger)
	module := NewModule(Dependencies{
		Catalog:            library,
		Kits:               store,
		Pages:              store,
		Idempotency:        store,
		Clock:              store,
		IDGenerator:        store,
		BlockIDs:           store,
		IdempotencyTTL:     7 * 24 * time.Hour,
		PreviewConcurrency: previewConcurrency,
		Logger:             logger,
	})
	module.Store = store
	return module
}
