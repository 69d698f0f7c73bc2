package cmd

import (
	"fmt"
	"strings"

	"github.com/josefdc/Algoritmos-Despacho/internal/registry"
	"github.com/josefdc/Algoritmos-Despacho/internal/requests"
	"github.com/spf13/cobra"
)

func newAskCmd() *cobra.Command {
	var (
		file   string
		policy string
	)
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the assistant about a simulation",
		Args:  cobra.MinimumNArgs(1),
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
			if policy != "" {
				request.Algorithm = policy
			}

			response, err := srv.Ask(cmd.Context(), &requests.AskRequest{
				ScheduleRequests: *request,
				Question:         strings.Join(args, " "),
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), response.Answer)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "process registry (yaml or json, any afs URL)")
	cmd.Flags().StringVarP(&policy, "policy", "p", "", "FIFO, SJF or PRIORITY (defaults to the registry algorithm)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
