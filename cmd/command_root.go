// Package cmd holds the despacho command line.
package cmd

import (
	"github.com/josefdc/Algoritmos-Despacho/config"
	"github.com/josefdc/Algoritmos-Despacho/internal/assistant"
	"github.com/josefdc/Algoritmos-Despacho/internal/requests"
	"github.com/josefdc/Algoritmos-Despacho/internal/service"
	"github.com/josefdc/Algoritmos-Despacho/internal/store"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "despacho",
		Short:         "Non-preemptive CPU dispatch simulator",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "path to a config file (default ./config.yaml)")

	root.AddCommand(newServeCmd())
	root.AddCommand(newSimulateCmd())
	root.AddCommand(newAskCmd())
	root.AddCommand(newRunsCmd())

	return root
}

func loadConfig(cmd *cobra.Command) (*config.SchedulerConfig, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// newStore opens the file store at cfg.StoreURL, or an in-memory store when none is set.
func newStore(cfg *config.SchedulerConfig) (store.Service, error) {
	if cfg.StoreURL == "" {
		return store.NewMemory(), nil
	}
	return store.NewFS(cfg.StoreURL)
}

func newService(cfg *config.SchedulerConfig) (*service.Service, error) {
	runs, err := newStore(cfg)
	if err != nil {
		return nil, err
	}
	defaults := requests.PriorityDefaults{Default: cfg.DefaultPriority, Required: cfg.RequirePriority}
	return service.New(runs, assistant.New(cfg.Assistant), defaults), nil
}
