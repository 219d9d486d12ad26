package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rami-ben-jouira/rag-agent-project/internal/data/graph"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/ingest"
)

func RunReset(cmd *cobra.Command, args []string) error {
	_, log, err := loadEnv()
	if err != nil {
		return err
	}
	defer log.Sync()
	return withGraph(cmd.Context(), log, func(store graph.Store) error {
		if err := ingest.NewPipeline(store, log, ingest.Options{}).Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "graph cleared")
		return nil
	})
}

func RunStats(cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to read --json flag: %w", err)
	}
	_, log, err := loadEnv()
	if err != nil {
		return err
	}
	defer log.Sync()
	return withGraph(cmd.Context(), log, func(store graph.Store) error {
		dist, rels, err := distribution(cmd.Context(), store)
		if err != nil {
			return err
		}
		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{"nodes": dist, "relationship_count": rels})
		}
		printDistribution(cmd.OutOrStdout(), dist, rels)
		return nil
	})
}
