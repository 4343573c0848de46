package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EntitiesGeneratedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "datagen_entities_generated_total",
		Help: "Total number of entities generated, by entity type",
	}, []string{"entity"})

	StageDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "datagen_stage_duration_seconds",
		Help:    "Duration of each generation stage",
		Buckets: prometheus.DefBuckets,
	}, []string{"stage"})

	ExportRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "datagen_export_rows_total",
		Help: "Total number of rows/documents written, by output file",
	}, []string{"file"})

	ExportDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "datagen_export_duration_seconds",
		Help:    "Duration of each export step",
		Buckets: prometheus.DefBuckets,
	}, []string{"format"})

	RowsLoadedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "datagen_rows_loaded_total",
		Help: "Total number of rows bulk-loaded into Postgres, by table",
	}, []string{"table"})

	EventsPublishedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "datagen_events_published_total",
		Help: "Total number of user events published to Kafka",
	})
)
