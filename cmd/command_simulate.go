package cmd

import (
	"github.com/josefdc/Algoritmos-Despacho/internal/registry"
	"github.com/josefdc/Algoritmos-Despacho/internal/schedulers"
	"github.com/spf13/cobra"
)

func newSimulateCmd() *cobra.Command {
	var (
		file   string
		policy string
		all    bool
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate a process registry and print the timeline and metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			srv, err := newService(cfg)
			if err != nil {
				return err
			}
			request, err := registry.New(nil).Load(cmd.Context(), file)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if all {
				response, err := srv.SimulateAll(cmd.Context(), request)
				if err != nil {
					return err
				}
				printSchedules(out, response.RunId, response.Schedules...)
				return nil
			}

			var selected schedulers.Policy
			if policy != "" {
				if selected, err = schedulers.ParsePolicy(policy); err != nil {
					return err
				}
			}
			response, err := srv.Simulate(cmd.Context(), request, selected)
			if err != nil {
				return err
			}
			printSchedules(out, response.RunId, response.ScheduleResponse)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "process registry (yaml or json, any afs URL)")
	cmd.Flags().StringVarP(&policy, "policy", "p", "", "FIFO, SJF or PRIORITY (defaults to the registry algorithm)")
	cmd.Flags().BoolVar(&all, "all", false, "run every policy")
	_ = cmd.MarkFlagRequired("file")
	cmd.MarkFlagsMutuallyExclusive("policy", "all")
	return cmd
}
