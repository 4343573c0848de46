package gen

import (
	"context"
	"testing"
	"time"

	"datagen-service/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.GeneratorConfig {
	return config.GeneratorConfig{
		Seed:          42,
		ReferenceDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Users:         50,
		Categories:    6,
		Products:      200,
		Orders:        400,
		Carts:         100,
		Events:        300,
		CartItemsMin:  1,
		CartItemsMax:  6,
		OrderItemsMin: 1,
		OrderItemsMax: 5,
		GraphUsers:    20,
		GraphProducts: 50,
		GraphEdges:    500,
	}
}

func newTestDataset(t *testing.T) *Dataset {
	t.Helper()
	ds, err := NewGenerator(testConfig()).Generate(context.Background())
	require.NoError(t, err)
	return ds
}

func TestPipelineDeterminism(t *testing.T) {
	a, err := NewGenerator(testConfig()).Generate(context.Background())
	require.NoError(t, err)
	b, err := NewGenerator(testConfig()).Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a.Users, b.Users)
	assert.Equal(t, a.Addresses, b.Addresses)
	assert.Equal(t, a.Products, b.Products)
	assert.Equal(t, a.Catalog, b.Catalog)
	assert.Equal(t, a.Carts, b.Carts)
	assert.Equal(t, a.CartItems, b.CartItems)
	assert.Equal(t, a.Orders, b.Orders)
	assert.Equal(t, a.OrderItems, b.OrderItems)
	assert.Equal(t, a.Payments, b.Payments)
	assert.Equal(t, a.Returns, b.Returns)
	assert.Equal(t, a.ReturnItems, b.ReturnItems)
	assert.Equal(t, a.Events, b.Events)
	assert.Equal(t, a.GraphScript, b.GraphScript)
}

func TestPipelineSeedChangesOutput(t *testing.T) {
	cfg := testConfig()
	a, err := NewGenerator(cfg).Generate(context.Background())
	require.NoError(t, err)

	cfg.Seed = 43
	b, err := NewGenerator(cfg).Generate(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, a.Products, b.Products)
	assert.NotEqual(t, a.Orders, b.Orders)
}

func TestPipelineConfiguredCounts(t *testing.T) {
	cfg := testConfig()
	ds, err := NewGenerator(cfg).Generate(context.Background())
	require.NoError(t, err)

	assert.Len(t, ds.Users, cfg.Users)
	assert.Len(t, ds.Addresses, cfg.Users*2)
	assert.Len(t, ds.Categories, cfg.Categories)
	assert.Len(t, ds.Products, cfg.Products)
	assert.Len(t, ds.Catalog, cfg.Products)
	assert.Len(t, ds.Carts, cfg.Carts)
	assert.Len(t, ds.Orders, cfg.Orders)
	assert.Len(t, ds.Payments, cfg.Orders)
	assert.Len(t, ds.Events, cfg.Events)
}

func TestPipelineSingleUserIsFixture(t *testing.T) {
	cfg := testConfig()
	cfg.Users = 1
	cfg.Orders = 20
	cfg.Carts = 10
	cfg.Events = 10

	ds, err := NewGenerator(cfg).Generate(context.Background())
	require.NoError(t, err)

	require.Len(t, ds.Users, 1)
	assert.Equal(t, FixtureUsername, ds.Users[0].Username)
	assert.Equal(t, FixtureEmail, ds.Users[0].Email)

	// Every order still resolves the fixture user's shipping address.
	for _, o := range ds.Orders {
		assert.EqualValues(t, FixtureUserID, o.UserID)
	}
}
