package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"datagen-service/config"
	"datagen-service/internal/gen"
	"datagen-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportTestDataset(t *testing.T) *gen.Dataset {
	t.Helper()
	cfg := config.GeneratorConfig{
		Seed:          42,
		ReferenceDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Users:         20,
		Categories:    6,
		Products:      60,
		Orders:        150,
		Carts:         40,
		Events:        100,
		CartItemsMin:  1,
		CartItemsMax:  6,
		OrderItemsMin: 1,
		OrderItemsMax: 5,
		GraphUsers:    10,
		GraphProducts: 30,
		GraphEdges:    500,
	}
	ds, err := gen.NewGenerator(cfg).Generate(context.Background())
	require.NoError(t, err)
	return ds
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteCSVFiles(t *testing.T) {
	ds := exportTestDataset(t)
	dir := t.TempDir()
	require.NoError(t, WriteCSVFiles(dir, ds))

	wantRows := map[string]int{
		"users.csv":        len(ds.Users),
		"addresses.csv":    len(ds.Addresses),
		"categories.csv":   len(ds.Categories),
		"products.csv":     len(ds.Products),
		"carts.csv":        len(ds.Carts),
		"cart_items.csv":   len(ds.CartItems),
		"orders.csv":       len(ds.Orders),
		"order_items.csv":  len(ds.OrderItems),
		"payments.csv":     len(ds.Payments),
		"returns.csv":      len(ds.Returns),
		"return_items.csv": len(ds.ReturnItems),
	}
	for name, n := range wantRows {
		rows := readCSV(t, filepath.Join(dir, name))
		assert.Len(t, rows, n+1, "%s: header plus one row per entity", name)
	}

	users := readCSV(t, filepath.Join(dir, "users.csv"))
	assert.Equal(t, []string{"user_id", "username", "email", "password_hash", "first_name", "last_name", "phone", "created_at", "updated_at"}, users[0])
	assert.Equal(t, "1", users[1][0])
	assert.Equal(t, gen.FixtureUsername, users[1][1])
	assert.Equal(t, "2025-06-15 10:00:00", users[1][7])

	orders := readCSV(t, filepath.Join(dir, "orders.csv"))
	assert.Equal(t, "order_id", orders[0][0])
	for _, row := range orders[1:] {
		assert.Regexp(t, `^\d+\.\d{2}$`, row[4], "total_amount keeps 2 decimals")
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, row[2])
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, row[9], "expected_shipping_date is date-only")
	}

	carts := readCSV(t, filepath.Join(dir, "carts.csv"))
	for i, row := range carts[1:] {
		c := ds.Carts[i]
		assert.Equal(t, c.IsActive, row[6] == "true")
		if c.ConvertedAt == nil {
			assert.Empty(t, row[8])
		} else {
			assert.NotEmpty(t, row[8])
		}
	}

	categories := readCSV(t, filepath.Join(dir, "categories.csv"))
	for _, row := range categories[1:] {
		assert.Empty(t, row[2], "top-level categories have no parent")
	}
}

func TestWriteJSONFiles(t *testing.T) {
	ds := exportTestDataset(t)
	dir := t.TempDir()
	require.NoError(t, WriteJSONFiles(dir, ds))

	var catalog []models.CatalogDocument
	raw, err := os.ReadFile(filepath.Join(dir, "product_catalog.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &catalog))
	require.Len(t, catalog, len(ds.Catalog))
	assert.Equal(t, ds.Catalog[0].ProductID, catalog[0].ProductID)
	assert.Equal(t, ds.Catalog[0].Category, catalog[0].Category)

	var events []models.UserEvent
	raw, err = os.ReadFile(filepath.Join(dir, "user_events.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &events))
	require.Len(t, events, len(ds.Events))
	assert.Equal(t, ds.Events[0].EventType, events[0].EventType)
	assert.Equal(t, ds.Events[0].SessionID, events[0].SessionID)
}

func TestWriteCypher(t *testing.T) {
	ds := exportTestDataset(t)
	dir := t.TempDir()
	require.NoError(t, WriteCypher(dir, ds.GraphScript))

	raw, err := os.ReadFile(filepath.Join(dir, "neo4j_import.cypher"))
	require.NoError(t, err)
	script := string(raw)

	assert.Equal(t, ds.GraphScript, script)
	assert.True(t, strings.HasPrefix(script, "// Auto-generated Neo4j import"))
	assert.Contains(t, script, "MERGE (:Category {name:")
	assert.Contains(t, script, "[:BELONGS_TO]")
}
