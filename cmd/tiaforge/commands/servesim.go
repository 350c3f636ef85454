package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"tiaforge/internal/engineering"
	"tiaforge/internal/engineering/bridge"
	"tiaforge/internal/engineering/sim"
)

// serve-sim: expose the simulator over the bridge protocol, so bridge
// clients can be exercised without the engineering tool
func serveSimCmd() *cobra.Command {
	var (
		addr    string
		catalog string
	)

	cmd := &cobra.Command{
		Use:   "serve-sim",
		Short: "Serve the simulator as a bridge host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(catalog)
			if err != nil {
				return err
			}

			open := func(p bridge.OpenParams) (engineering.Portal, error) {
				log.Info().Str("version", p.Version).Msg("Simulated portal opened")
				return sim.NewPortal(cat), nil
			}

			mux := http.NewServeMux()
			mux.Handle("/bridge", bridge.NewServer(open, log))
			srv := &http.Server{
				Addr:              addr,
				Handler:           mux,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info().Str("addr", addr).Msg("Bridge simulator listening")
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			log.Info().Msg("Shutting down bridge simulator")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8765", "listen address")
	cmd.Flags().StringVar(&catalog, "catalog", "", "simulator hardware catalog (YAML)")
	return cmd
}
