package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/josefdc/Algoritmos-Despacho/api"
	"github.com/josefdc/Algoritmos-Despacho/internal/tracing"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.Tracing.Enabled {
				shutdown, err := tracing.Init("despacho", version, cfg.Tracing.Output)
				if err != nil {
					return fmt.Errorf("failed to init tracing: %w", err)
				}
				defer func() {
					ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					if err := shutdown(ctx); err != nil {
						log.Printf("failed to shut down tracing: %v", err)
					}
				}()
			}
			srv, err := newService(cfg)
			if err != nil {
				return err
			}

			app := fiber.New(fiber.Config{DisableStartupMessage: true})
			api.Register(app, api.NewSchedulerHandlerImpl(srv))

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-quit
				log.Println("shutting down")
				_ = app.Shutdown()
			}()

			log.Printf("listening on :%d", cfg.Port)
			return app.Listen(fmt.Sprintf(":%d", cfg.Port))
		},
	}
	return cmd
}
