package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"datagen-service/internal/gen"
	"datagen-service/internal/util"

	"go.uber.org/zap"
)

// WriteJSONFiles writes the document projection: one array-of-objects file
// per collection, timestamps rendered as strings.
func WriteJSONFiles(dir string, ds *gen.Dataset) error {
	start := time.Now()

	if err := writeJSON(filepath.Join(dir, "product_catalog.json"), ds.Catalog); err != nil {
		return fmt.Errorf("writing product_catalog.json: %w", err)
	}
	util.ExportRowsTotal.WithLabelValues("product_catalog.json").Add(float64(len(ds.Catalog)))

	if err := writeJSON(filepath.Join(dir, "user_events.json"), ds.Events); err != nil {
		return fmt.Errorf("writing user_events.json: %w", err)
	}
	util.ExportRowsTotal.WithLabelValues("user_events.json").Add(float64(len(ds.Events)))

	util.ExportDurationSeconds.WithLabelValues("json").Observe(time.Since(start).Seconds())
	util.GetLogger().Info("Wrote JSON documents",
		zap.Int("catalog", len(ds.Catalog)),
		zap.Int("events", len(ds.Events)))
	return nil
}

func writeJSON(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return f.Close()
}
