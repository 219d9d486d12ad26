package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "medgraph",
		Short: "Load a disease corpus into Neo4j and serve it to a reasoner",
		Long: `Medgraph ingests a corpus of disease records (symptoms, treatments,
causes, lifestyle and environmental factors) into a Neo4j graph and
exposes a small HTTP API for seeding, graph statistics and building
reasoner queries from symptom reports.

Connection settings come from NEO4J_URI, NEO4J_USERNAME and
NEO4J_PASSWORD (a .env file in the working directory is honored).`,
		SilenceUsage: true,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Seed an empty graph, then serve the HTTP API",
		RunE:  RunServe,
	}

	ingestCmd := &cobra.Command{
		Use:   "ingest",
		Short: "Load the corpus into the graph and print statistics",
		RunE:  RunIngest,
	}
	ingestCmd.Flags().String("corpus", "", "Corpus file (.json, .yaml, .yml); default MEDGRAPH_CORPUS_PATH")
	ingestCmd.Flags().Bool("reset", true, "Clear the graph before ingesting")
	ingestCmd.Flags().Bool("dry-run", false, "Ingest into an in-memory graph instead of Neo4j")
	ingestCmd.Flags().Bool("continue-on-error", false, "Keep going past failed records and report them at the end")

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every node and relationship",
		RunE:  RunReset,
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Print node counts per label and the relationship count",
		RunE:  RunStats,
	}
	statsCmd.Flags().Bool("json", false, "Print machine-readable statistics")

	queryCmd := &cobra.Command{
		Use:   "query",
		Short: "Print the reasoner query built from a symptom report",
		RunE:  RunQuery,
	}
	queryCmd.Flags().String("symptoms", "", "Reported symptoms")
	queryCmd.Flags().String("duration", "", "How long symptoms have lasted")
	queryCmd.Flags().String("severity", "", "Severity")
	queryCmd.Flags().String("age-group", "", "Age group")
	queryCmd.Flags().StringSlice("lifestyle", nil, "Lifestyle factors (comma-separated)")
	queryCmd.Flags().StringSlice("environment", nil, "Environmental context (comma-separated)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "medgraph %s\n", version)
		},
	}

	rootCmd.AddCommand(
		serveCmd,
		ingestCmd,
		resetCmd,
		statsCmd,
		queryCmd,
		versionCmd,
	)

	return rootCmd
}
