package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tiaforge/internal/config"
	"tiaforge/internal/narration"
	"tiaforge/internal/placement"
	"tiaforge/internal/service"
	"tiaforge/internal/watcher"
)

type planOptions struct {
	simulate bool
	verbose  bool
	watch    bool
	catalog  string
}

// plan [input]: parse the spreadsheet and optionally dry-run it on the simulator
func planCmd() *cobra.Command {
	var opts planOptions

	cmd := &cobra.Command{
		Use:   "plan [input.xlsx|input.csv]",
		Short: "Show the devices and modules a create run would attempt",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := cfg.Input
			if len(args) == 1 {
				input = args[0]
			}
			if input == "" {
				return errors.New("no input given")
			}

			portal := cfg.Portal
			portal.Backend = config.BackendSim
			if cmd.Flags().Changed("catalog") {
				portal.Catalog = opts.catalog
			}

			if !opts.watch {
				return runPlan(cmd.Context(), input, portal, opts)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			replan := func() {
				if err := runPlan(ctx, input, portal, opts); err != nil {
					log.Error().Err(err).Msg("Plan failed")
				}
			}
			replan()
			err := watcher.New(input, replan, log).Watch(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.simulate, "simulate", false, "run the placement and topology against the simulator")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log every slot probe while simulating")
	f.BoolVarP(&opts.watch, "watch", "w", false, "plan again whenever the input changes")
	f.StringVar(&opts.catalog, "catalog", "", "simulator hardware catalog (YAML)")
	return cmd
}

func runPlan(ctx context.Context, input string, portal config.PortalConfig, opts planOptions) error {
	plan, err := service.NewCreator(nil).Plan(input)
	if err != nil {
		return err
	}
	printPlan(stdout, plan)

	if !opts.simulate {
		return nil
	}

	open, err := portalOpener(portal, log)
	if err != nil {
		return err
	}

	creatorOpts := []service.Option{
		service.WithLogger(log),
		service.WithNarration(narration.NewConsoleSink(stdout)),
	}
	if opts.verbose {
		creatorOpts = append(creatorOpts, service.WithPlacement(placement.WithObserver(func(p placement.Probe) {
			ev := log.Info().Str("slot", p.Slot.String()).Bool("allowed", p.Allowed)
			if p.Err != nil {
				ev = ev.AnErr("probe_error", p.Err)
			}
			ev.Msg("Probe")
		})))
	}

	report, err := service.NewCreator(open, creatorOpts...).Run(ctx, service.Request{
		ProjectName: "plan",
		Input:       input,
		Backend:     string(config.BackendSim),
	})
	if report != nil {
		printReportSummary(report)
	}
	return err
}
