package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Rami-ben-jouira/rag-agent-project/internal/data/corpus"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/data/graph"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/domain/medical"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/normalization"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/platform/logger"
)

const tracerName = "github.com/Rami-ben-jouira/rag-agent-project/internal/ingest"

type Options struct {
	// ContinueOnError keeps going past a failed record and reports every
	// failure in a *BatchError. Off by default: the first failure stops the run.
	ContinueOnError bool
}

// Pipeline loads a disease corpus and upserts it into a graph.Store.
// It is not safe for concurrent use with Reset; see Seeder.
type Pipeline struct {
	store  graph.Store
	log    *logger.Logger
	opts   Options
	tracer trace.Tracer
	load   func(path string) ([]medical.DiseaseRecord, error)
}

func NewPipeline(store graph.Store, log *logger.Logger, opts Options) *Pipeline {
	if log == nil {
		log = logger.NewNop()
	}
	return &Pipeline{
		store:  store,
		log:    log.With("component", "IngestPipeline"),
		opts:   opts,
		tracer: otel.Tracer(tracerName),
		load:   corpus.Load,
	}
}

// Ingest loads the corpus at path and writes every record. A load failure
// returns zero stats before the store is touched. Otherwise the returned
// stats count every write made, including those before a failure.
func (p *Pipeline) Ingest(ctx context.Context, path string) (medical.Stats, error) {
	records, err := p.Load(ctx, path)
	if err != nil {
		return medical.Stats{}, err
	}
	return p.ingestLoaded(ctx, path, records)
}

// Load decodes the corpus without touching the store.
func (p *Pipeline) Load(ctx context.Context, path string) ([]medical.DiseaseRecord, error) {
	_, span := p.tracer.Start(ctx, "ingest.load", trace.WithAttributes(
		attribute.String("ingest.corpus_path", path),
	))
	defer span.End()
	records, err := p.load(path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "corpus load failed")
		p.log.Error("corpus load failed", "corpus", path, "error", err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("ingest.records", len(records)))
	return records, nil
}

func (p *Pipeline) ingestLoaded(ctx context.Context, path string, records []medical.DiseaseRecord) (medical.Stats, error) {
	runID := uuid.NewString()
	ctx, span := p.tracer.Start(ctx, "ingest.run", trace.WithAttributes(
		attribute.String("ingest.run_id", runID),
		attribute.String("ingest.corpus_path", path),
		attribute.Int("ingest.records", len(records)),
		attribute.Bool("ingest.continue_on_error", p.opts.ContinueOnError),
	))
	defer span.End()
	log := p.log.With("run_id", runID, "corpus", path)

	start := time.Now()
	stats, err := p.ingestRecords(ctx, log, records)
	span.SetAttributes(
		attribute.Int("ingest.diseases", stats.Diseases),
		attribute.Int("ingest.relationships", stats.Relationships),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "ingestion failed")
		log.Error("ingestion failed", "stats", stats.String(), "error", err)
		return stats, err
	}
	log.Info("ingestion complete", "records", len(records), "stats", stats.String(), "elapsed", time.Since(start).String())
	return stats, nil
}

// IngestRecords writes already decoded records with the same policy as Ingest.
func (p *Pipeline) IngestRecords(ctx context.Context, records []medical.DiseaseRecord) (medical.Stats, error) {
	return p.ingestLoaded(ctx, "", records)
}

func (p *Pipeline) ingestRecords(ctx context.Context, log *logger.Logger, records []medical.DiseaseRecord) (medical.Stats, error) {
	var (
		stats  medical.Stats
		failed []*RecordError
	)
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		disease := normalization.TrimName(rec.DiseaseName())
		if err := p.ingestRecord(ctx, disease, rec, &stats); err != nil {
			re := &RecordError{Index: i, Disease: disease, Cause: err}
			if !p.opts.ContinueOnError || ctx.Err() != nil {
				return stats, re
			}
			log.Warn("record failed (continuing)", "index", i, "disease", disease, "error", err)
			failed = append(failed, re)
			continue
		}
		log.Debug("record ingested", "index", i, "disease", disease)
	}
	if len(failed) > 0 {
		return stats, &BatchError{Records: len(records), Errors: failed}
	}
	return stats, nil
}

func (p *Pipeline) ingestRecord(ctx context.Context, disease string, rec medical.DiseaseRecord, stats *medical.Stats) error {
	if err := p.store.UpsertDisease(ctx, disease, rec.Metadata()); err != nil {
		return err
	}
	stats.Diseases++

	for _, c := range medical.Categories {
		for _, raw := range rec.Values(c) {
			if err := p.store.LinkEntity(ctx, disease, c, normalization.TrimName(raw)); err != nil {
				return err
			}
			stats.AddLink(c.Label)
		}
	}
	return nil
}

func (p *Pipeline) EnsureSchema(ctx context.Context) error {
	return p.store.EnsureSchema(ctx)
}

// Reset deletes every node and relationship. It is not retried.
func (p *Pipeline) Reset(ctx context.Context) error {
	ctx, span := p.tracer.Start(ctx, "ingest.reset")
	defer span.End()
	if err := p.store.Reset(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "reset failed")
		p.log.Error("graph reset failed", "error", err)
		return fmt.Errorf("ingest: %w", err)
	}
	p.log.Info("graph reset")
	return nil
}
