package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stow/internal/app"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute what the current workspace and lock would install",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := cmd.Flags().GetString("directory")
			if err != nil {
				return err
			}
			project, err := cmd.Flags().GetString("project")
			if err != nil {
				return err
			}
			allowStale, err := cmd.Flags().GetBool("allow-stale")
			if err != nil {
				return err
			}

			return c.app.Plan(app.PlanRequest{
				Dir:         dir,
				ProjectName: project,
				AllowStale:  allowStale,
			})
		},
	}

	cmd.Flags().StringP("project", "p", "", "Plan a single workspace member instead of the whole workspace")
	cmd.Flags().Bool("allow-stale", false, "Skip the lockfile manifest-digest check")

	return cmd
}
