package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rami-ben-jouira/rag-agent-project/internal/data/corpus"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/data/graph"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/ingest"
)

func RunIngest(cmd *cobra.Command, args []string) error {
	corpusPath, err := cmd.Flags().GetString("corpus")
	if err != nil {
		return fmt.Errorf("failed to read --corpus flag: %w", err)
	}
	reset, err := cmd.Flags().GetBool("reset")
	if err != nil {
		return fmt.Errorf("failed to read --reset flag: %w", err)
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("failed to read --dry-run flag: %w", err)
	}
	continueOnError, err := cmd.Flags().GetBool("continue-on-error")
	if err != nil {
		return fmt.Errorf("failed to read --continue-on-error flag: %w", err)
	}

	cfg, log, err := loadEnv()
	if err != nil {
		return err
	}
	defer log.Sync()
	if corpusPath == "" {
		corpusPath = cfg.CorpusPath
	}
	// An explicit flag wins over INGEST_CONTINUE_ON_ERROR, in both directions.
	if !cmd.Flags().Changed("continue-on-error") {
		continueOnError = cfg.ContinueOnError
	}
	opts := ingest.Options{ContinueOnError: continueOnError}

	run := func(store graph.Store) error {
		ctx := cmd.Context()
		p := ingest.NewPipeline(store, log, opts)
		seeder := ingest.NewSeeder(p, corpusPath, log)
		report, seedErr := seeder.Seed(ctx, reset)

		out := cmd.OutOrStdout()
		if dryRun {
			fmt.Fprintln(out, "dry run: nothing was written to Neo4j")
		}
		printStats(out, report.Stats)
		if corpus.IsLoadError(seedErr) {
			return fmt.Errorf("corpus unavailable, graph left unchanged: %w", seedErr)
		}
		if seedErr != nil {
			return fmt.Errorf("ingestion failed: %w", seedErr)
		}
		dist, rels, err := distribution(ctx, store)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		printDistribution(out, dist, rels)
		return nil
	}

	if dryRun {
		return run(graph.NewMemoryStore())
	}
	return withGraph(cmd.Context(), log, run)
}
