package cmd

import (
	"github.com/spf13/cobra"
)

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs [run_id]",
		Short: "List stored runs, or print one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			runs, err := newStore(cfg)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				run, err := runs.Load(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printSchedules(cmd.OutOrStdout(), run.ID, run.Schedules...)
				return nil
			}
			list, err := runs.List(cmd.Context())
			if err != nil {
				return err
			}
			printRuns(cmd.OutOrStdout(), list)
			return nil
		},
	}
	return cmd
}
