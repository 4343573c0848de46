package gen

import (
	"context"
	"time"

	"datagen-service/config"
	"datagen-service/internal/models"
	"datagen-service/internal/util"

	"go.uber.org/zap"
)

// Dataset holds every generated collection of one run. All projections of
// the same logical fact set live side by side; downstream sinks serialize
// each collection without re-deriving anything.
type Dataset struct {
	Users       []models.User
	Addresses   []models.Address
	Categories  []models.Category
	Products    []models.Product
	Catalog     []models.CatalogDocument
	Carts       []models.Cart
	CartItems   []models.CartItem
	Orders      []models.Order
	OrderItems  []models.OrderItem
	Payments    []models.Payment
	Returns     []models.Return
	ReturnItems []models.ReturnItem
	Events      []models.UserEvent
	GraphScript string
}

// Generator runs the generation pipeline. Stages execute strictly
// sequentially and single-pass: each fully materializes its entities before
// the next reads them, all drawing from one shared value source. Stage order
// is part of the reproducibility contract.
type Generator struct {
	cfg    config.GeneratorConfig
	src    *Source
	logger *zap.Logger
}

// NewGenerator creates a generator with a fresh value source built from the
// configured seed and reference date.
func NewGenerator(cfg config.GeneratorConfig) *Generator {
	return &Generator{
		cfg:    cfg,
		src:    NewSource(cfg.Seed, cfg.ReferenceDate.UTC()),
		logger: util.GetLogger(),
	}
}

// Generate materializes the full dataset. A Generator is single-use: the
// value source advances as stages run, so call Generate once per instance.
func (g *Generator) Generate(ctx context.Context) (*Dataset, error) {
	ctx, span := util.StartSpan(ctx, "pipeline.Generate")
	defer span.End()

	ds := &Dataset{}

	g.stage(ctx, "users", func() error {
		ds.Users = GenerateUsers(g.src, g.cfg.Users)
		return nil
	})
	g.count("users", len(ds.Users))

	g.stage(ctx, "addresses", func() error {
		ds.Addresses = GenerateAddresses(g.src, ds.Users)
		return nil
	})
	g.count("addresses", len(ds.Addresses))

	ds.Categories = StaticCategories(g.cfg.Categories)
	g.count("categories", len(ds.Categories))

	g.stage(ctx, "products", func() error {
		ds.Products = GenerateProducts(g.src, g.cfg.Products, ds.Categories)
		return nil
	})
	g.count("products", len(ds.Products))

	g.stage(ctx, "catalog", func() error {
		ds.Catalog = BuildCatalog(g.src, ds.Products, ds.Categories)
		return nil
	})
	g.count("catalog_documents", len(ds.Catalog))

	g.stage(ctx, "carts", func() error {
		ds.Carts, ds.CartItems = GenerateCarts(g.src, ds.Users, ds.Products,
			g.cfg.Carts, g.cfg.CartItemsMin, g.cfg.CartItemsMax)
		return nil
	})
	g.count("carts", len(ds.Carts))
	g.count("cart_items", len(ds.CartItems))

	if err := g.stage(ctx, "orders", func() error {
		var err error
		ds.Orders, ds.OrderItems, ds.Payments, err = GenerateOrders(g.src,
			ds.Users, ds.Products, ds.Addresses,
			g.cfg.Orders, g.cfg.OrderItemsMin, g.cfg.OrderItemsMax)
		return err
	}); err != nil {
		return nil, err
	}
	g.count("orders", len(ds.Orders))
	g.count("order_items", len(ds.OrderItems))
	g.count("payments", len(ds.Payments))

	if err := g.stage(ctx, "returns", func() error {
		var err error
		ds.Returns, ds.ReturnItems, err = GenerateReturns(g.src, ds.Orders, ds.OrderItems)
		return err
	}); err != nil {
		return nil, err
	}
	g.count("returns", len(ds.Returns))
	g.count("return_items", len(ds.ReturnItems))

	g.stage(ctx, "events", func() error {
		ds.Events = GenerateEvents(g.src, ds.Users, ds.Products, ds.Categories, g.cfg.Events)
		return nil
	})
	g.count("user_events", len(ds.Events))

	g.stage(ctx, "graph", func() error {
		ds.GraphScript = BuildGraphScript(ds.Users, ds.Products, ds.Categories,
			ds.Orders, ds.OrderItems, GraphBounds{
				Users:    g.cfg.GraphUsers,
				Products: g.cfg.GraphProducts,
				Edges:    g.cfg.GraphEdges,
			})
		return nil
	})

	return ds, nil
}

func (g *Generator) stage(ctx context.Context, name string, fn func() error) error {
	_, span := util.StartSpan(ctx, "generate."+name)
	defer span.End()

	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	util.StageDurationSeconds.WithLabelValues(name).Observe(elapsed.Seconds())

	if err != nil {
		span.RecordError(err)
		g.logger.Error("Stage failed", zap.String("stage", name), zap.Error(err))
		return err
	}
	g.logger.Info("Stage complete", zap.String("stage", name), zap.Duration("took", elapsed))
	return nil
}

func (g *Generator) count(entity string, n int) {
	util.EntitiesGeneratedTotal.WithLabelValues(entity).Add(float64(n))
}
