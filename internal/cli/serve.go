package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Rami-ben-jouira/rag-agent-project/internal/app"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/platform/shutdown"
)

func RunServe(cmd *cobra.Command, args []string) error {
	ctx, stop := shutdown.NotifyContext(cmd.Context())
	defer stop()

	a, err := app.New(ctx)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	a.Bootstrap(ctx)
	return a.Run(ctx)
}
