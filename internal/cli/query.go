package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rami-ben-jouira/rag-agent-project/internal/modules/diagnosis"
)

func RunQuery(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	var (
		r   diagnosis.SymptomReport
		err error
	)
	if r.Symptoms, err = f.GetString("symptoms"); err != nil {
		return fmt.Errorf("failed to read --symptoms flag: %w", err)
	}
	if r.Duration, err = f.GetString("duration"); err != nil {
		return fmt.Errorf("failed to read --duration flag: %w", err)
	}
	if r.Severity, err = f.GetString("severity"); err != nil {
		return fmt.Errorf("failed to read --severity flag: %w", err)
	}
	if r.AgeGroup, err = f.GetString("age-group"); err != nil {
		return fmt.Errorf("failed to read --age-group flag: %w", err)
	}
	if r.LifestyleFactors, err = f.GetStringSlice("lifestyle"); err != nil {
		return fmt.Errorf("failed to read --lifestyle flag: %w", err)
	}
	if r.EnvironmentalContext, err = f.GetStringSlice("environment"); err != nil {
		return fmt.Errorf("failed to read --environment flag: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), diagnosis.BuildQuery(r))
	return nil
}
