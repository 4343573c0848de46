package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"datagen-service/internal/util"

	"go.uber.org/zap"
)

// WriteCypher writes the graph projection script as-is. The script is
// already escaped and sectioned by the graph projector; this is a pure
// serialization boundary.
func WriteCypher(dir, script string) error {
	start := time.Now()

	path := filepath.Join(dir, "neo4j_import.cypher")
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		return fmt.Errorf("writing neo4j_import.cypher: %w", err)
	}

	statements := strings.Count(script, ";\n")
	util.ExportRowsTotal.WithLabelValues("neo4j_import.cypher").Add(float64(statements))
	util.ExportDurationSeconds.WithLabelValues("cypher").Observe(time.Since(start).Seconds())
	util.GetLogger().Info("Wrote Cypher import script",
		zap.String("file", "neo4j_import.cypher"),
		zap.Int("statements", statements))
	return nil
}
