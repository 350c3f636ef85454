package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"tiaforge/internal/codec"
	"tiaforge/internal/config"
	"tiaforge/internal/domain"
	"tiaforge/internal/narration"
	"tiaforge/internal/service"
)

type createOptions struct {
	projectPath   string
	projectName   string
	version       string
	backend       string
	bridgeURL     string
	installRoot   string
	catalog       string
	withUI        bool
	reportPath    string
	reportFormat  string
	narrationFile string
	logNarration  bool
	noJournal     bool
	quiet         bool
}

// create [input]: build a project from a device spreadsheet
func createCmd() *cobra.Command {
	var opts createOptions

	cmd := &cobra.Command{
		Use:   "create [input.xlsx|input.csv]",
		Short: "Create a project and its devices from a spreadsheet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.Input = args[0]
			}
			if err := opts.apply(cmd, cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			log.Debug().Msg(cfg.Summary())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			report, runErr := runCreate(ctx, cfg, opts)
			if report != nil {
				printReportSummary(report)
				if err := exportReport(report, cfg.Report); err != nil {
					log.Error().Err(err).Msg("Failed to export report")
					if runErr == nil {
						return err
					}
				}
			}
			return runErr
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.projectPath, "project-path", "", "directory the project is created in")
	f.StringVar(&opts.projectName, "project-name", "", "project name")
	f.StringVar(&opts.version, "portal-version", "", "engineering tool version (e.g. 17, 18, 19)")
	f.StringVar(&opts.backend, "backend", "", "bridge or sim")
	f.StringVar(&opts.bridgeURL, "bridge-url", "", "bridge host websocket URL")
	f.StringVar(&opts.installRoot, "install-root", "", "engineering tool install root on the bridge host")
	f.StringVar(&opts.catalog, "catalog", "", "simulator hardware catalog (YAML)")
	f.BoolVar(&opts.withUI, "with-ui", false, "start the engineering tool with its user interface")
	f.StringVar(&opts.reportPath, "report", "", "write the run report to this file")
	f.StringVar(&opts.reportFormat, "report-format", "", "report format: json, yaml or ansible")
	f.StringVar(&opts.narrationFile, "narration-file", "", "also append progress lines to this file")
	f.BoolVar(&opts.logNarration, "log-narration", false, "also send progress lines to the log")
	f.BoolVar(&opts.noJournal, "no-journal", false, "do not record the run in the journal")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "do not print progress lines")
	return cmd
}

// apply copies flags that were set onto c
func (o createOptions) apply(cmd *cobra.Command, c *config.Config) error {
	changed := cmd.Flags().Changed
	if changed("project-path") {
		c.Project.Path = o.projectPath
	}
	if changed("project-name") {
		c.Project.Name = o.projectName
	}
	if changed("portal-version") {
		c.Portal.Version = o.version
	}
	if changed("backend") {
		b, err := config.ParseBackend(o.backend)
		if err != nil {
			return err
		}
		c.Portal.Backend = b
	}
	if changed("bridge-url") {
		c.Portal.BridgeURL = o.bridgeURL
	}
	if changed("install-root") {
		c.Portal.InstallRoot = o.installRoot
	}
	if changed("catalog") {
		c.Portal.Catalog = o.catalog
	}
	if changed("with-ui") {
		c.Portal.WithUI = o.withUI
	}
	if changed("report") {
		c.Report.Path = o.reportPath
		if !changed("report-format") {
			c.Report.Format = config.FormatForPath(o.reportPath)
		}
	}
	if changed("report-format") {
		format, err := config.ParseReportFormat(o.reportFormat)
		if err != nil {
			return err
		}
		c.Report.Format = format
	}
	if o.noJournal {
		c.Journal.Path = ""
	}
	return nil
}

func runCreate(ctx context.Context, c *config.Config, opts createOptions) (*domain.Report, error) {
	open, err := portalOpener(c.Portal, log)
	if err != nil {
		return nil, err
	}

	var sinks []narration.Sink
	if !opts.quiet {
		sinks = append(sinks, narration.NewConsoleSink(os.Stdout))
	}
	if opts.logNarration {
		sinks = append(sinks, narration.NewLogSink(log))
	}
	if opts.narrationFile != "" {
		fileSink, err := narration.OpenFileSink(opts.narrationFile)
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := fileSink.Close(); err != nil {
				log.Warn().Err(err).Msg("Failed to write narration file")
			}
		}()
		sinks = append(sinks, fileSink)
	}

	creatorOpts := []service.Option{
		service.WithNarration(narration.Multi(sinks...)),
		service.WithLogger(log.With().Str("component", "creator").Logger()),
	}

	journal, err := openJournal(c.Journal.Path)
	if err != nil {
		// the run itself does not depend on the journal
		log.Warn().Err(err).Msg("Journal disabled for this run")
	} else if journal != nil {
		defer journal.Close()
		creatorOpts = append(creatorOpts, service.WithJournal(journal))
	}

	creator := service.NewCreator(open, creatorOpts...)
	return creator.Run(ctx, service.Request{
		ProjectDir:  c.Project.Path,
		ProjectName: c.Project.Name,
		Input:       c.Input,
		Backend:     string(c.Portal.Backend),
	})
}

func exportReport(report *domain.Report, rc config.ReportConfig) error {
	if rc.Path == "" {
		return nil
	}
	exporter, err := codec.ExporterFor(string(rc.Format))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(rc.Path), 0755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	f, err := os.Create(rc.Path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := exporter.Export(report, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	log.Info().Str("path", rc.Path).Str("format", exporter.Format()).Msg("Report written")
	return nil
}
