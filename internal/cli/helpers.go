package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Rami-ben-jouira/rag-agent-project/internal/app"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/data/graph"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/domain/medical"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/platform/envutil"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/platform/logger"
)

// openGraph is swapped out in tests.
var openGraph = app.OpenGraph

func loadEnv() (app.Config, *logger.Logger, error) {
	if _, err := envutil.LoadDotEnv(); err != nil {
		return app.Config{}, nil, fmt.Errorf("load .env: %w", err)
	}
	cfg := app.LoadConfig()
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return app.Config{}, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, nil
}

func withGraph(ctx context.Context, log *logger.Logger, fn func(graph.Store) error) error {
	store, closeFn, err := openGraph(log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(ctx); cerr != nil {
			log.Warn("close graph failed", "error", cerr)
		}
	}()
	return fn(store)
}

func printStats(w io.Writer, s medical.Stats) {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "Ingested\tCount")
	fmt.Fprintf(tw, "diseases\t%d\n", s.Diseases)
	fmt.Fprintf(tw, "symptoms\t%d\n", s.Symptoms)
	fmt.Fprintf(tw, "treatments\t%d\n", s.Treatments)
	fmt.Fprintf(tw, "causes\t%d\n", s.Causes)
	fmt.Fprintf(tw, "lifestyle_factors\t%d\n", s.LifestyleFactors)
	fmt.Fprintf(tw, "environmental_factors\t%d\n", s.EnvironmentalFactors)
	fmt.Fprintf(tw, "relationships\t%d\n", s.Relationships)
	_ = tw.Flush()
}

func printDistribution(w io.Writer, dist []graph.LabelCount, rels int64) {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "Label\tNodes")
	for _, lc := range dist {
		fmt.Fprintf(tw, "%s\t%d\n", lc.Label, lc.Count)
	}
	fmt.Fprintf(tw, "relationships\t%d\n", rels)
	_ = tw.Flush()
}

func distribution(ctx context.Context, store graph.Store) ([]graph.LabelCount, int64, error) {
	dist, err := store.NodeDistribution(ctx)
	if err != nil {
		return nil, 0, err
	}
	rels, err := store.CountRelationships(ctx)
	if err != nil {
		return nil, 0, err
	}
	return dist, rels, nil
}
