package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"tiaforge/internal/domain"
	"tiaforge/internal/engineering"
	"tiaforge/internal/narration"
	"tiaforge/internal/placement"
	"tiaforge/internal/repository"
	"tiaforge/internal/sheet"
	"tiaforge/internal/topology"
)

// SuccessMessage is narrated when a run completes
const SuccessMessage = "Project and devices created successfully!"

// PortalOpener starts the engineering tool for one run
type PortalOpener func(ctx context.Context) (engineering.Portal, error)

// Request describes one run
type Request struct {
	ProjectDir  string
	ProjectName string
	Input       string
	// Backend labels the report; it does not select anything
	Backend string
}

// Option configures a Creator
type Option func(*Creator)

// WithJournal records every run in j
func WithJournal(j repository.Journal) Option {
	return func(c *Creator) { c.journal = j }
}

// WithNarration sends progress lines to sink
func WithNarration(sink narration.Sink) Option {
	return func(c *Creator) { c.narrator = narration.New(sink) }
}

// WithLogger sets the operational logger
func WithLogger(l zerolog.Logger) Option {
	return func(c *Creator) { c.logger = l }
}

// WithPlacement passes options to the placement engine
func WithPlacement(opts ...placement.Option) Option {
	return func(c *Creator) { c.placementOpts = append(c.placementOpts, opts...) }
}

// WithClock replaces time.Now for report timestamps
func WithClock(now func() time.Time) Option {
	return func(c *Creator) { c.now = now }
}

// Creator runs project creation
type Creator struct {
	open          PortalOpener
	journal       repository.Journal
	narrator      *narration.Narrator
	logger        zerolog.Logger
	placementOpts []placement.Option
	now           func() time.Time
}

// NewCreator creates a Creator that obtains its tool from open
func NewCreator(open PortalOpener, opts ...Option) *Creator {
	c := &Creator{
		open:     open,
		narrator: narration.New(nil),
		logger:   zerolog.Nop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// run carries the state of one Run call
type run struct {
	*Creator
	report  *domain.Report
	engine  *placement.Engine
	ifaces  []topology.Interface
	project engineering.Project
}

// Run performs a full creation run. The report is returned even when the
// run fails; objects already created in the tool are left as they are.
func (c *Creator) Run(ctx context.Context, req Request) (*domain.Report, error) {
	r := &run{
		Creator: c,
		engine:  placement.New(c.placementOpts...),
		report: &domain.Report{
			RunID:      uuid.NewString(),
			Project:    req.ProjectName,
			Input:      req.Input,
			Backend:    req.Backend,
			StartedAt:  c.now(),
			Devices:    []domain.DeviceReport{},
			Interfaces: []domain.InterfaceReport{},
		},
	}
	log := c.logger.With().Str("run_id", r.report.RunID).Logger()
	log.Info().Str("project", req.ProjectName).Str("input", req.Input).Msg("Run started")

	err := r.execute(ctx, req)

	r.report.FinishedAt = c.now()
	if err != nil {
		r.report.Error = err.Error()
		c.narrator.Failf("Error: %v", err)
		log.Error().Err(err).Msg("Run failed")
	} else {
		c.narrator.Successf(SuccessMessage)
		log.Info().
			Int("devices", len(r.report.Devices)).
			Int("unplaced", r.report.UnplacedModules()).
			Int("failed_interfaces", r.report.FailedInterfaces()).
			Msg("Run finished")
	}

	if c.journal != nil {
		if jErr := c.journal.SaveReport(ctx, r.report); jErr != nil {
			log.Warn().Err(jErr).Msg("Failed to journal run")
		}
	}

	return r.report, err
}

func (r *run) execute(ctx context.Context, req Request) error {
	r.narrator.Infof("Starting TIA Portal...")
	portal, err := r.open(ctx)
	if err != nil {
		return &RunError{Stage: StagePortal, Err: err}
	}
	defer func() {
		if err := portal.Close(); err != nil {
			r.logger.Warn().Err(err).Msg("Failed to close portal")
		}
	}()

	r.narrator.Infof("Creating new TIA project: %s at %s", req.ProjectName, req.ProjectDir)
	r.project, err = portal.CreateProject(req.ProjectDir, req.ProjectName)
	if err != nil {
		return &RunError{Stage: StageProject, Err: err}
	}

	rows, _, err := sheet.Load(req.Input)
	if err != nil {
		return &RunError{Stage: StageInput, Err: err}
	}

	for _, row := range rows {
		if err := r.device(row); err != nil {
			return err
		}
	}

	state, reports := topology.New(r.narrator).Assign(r.ifaces, rows)
	r.report.Interfaces = reports
	if state.Subnet != nil {
		r.report.Subnet = state.Subnet.Name()
	}
	if state.IoSystem != nil {
		r.report.IoSystem = state.IoSystem.Name()
	}

	if err := r.project.Save(); err != nil {
		return &RunError{Stage: StageSave, Err: err}
	}
	return nil
}

// device creates one row's device, plugs its modules and collects its interfaces
func (r *run) device(row domain.DeviceRow) error {
	r.narrator.Infof("Creating device: %s - %s", row.DeviceType, row.DeviceName)
	dev, err := r.project.CreateDevice(row.TypeIdentifier(), row.DeviceName)
	if err != nil {
		return &RunError{Stage: StageDevice, Row: row.Index, Device: row.DeviceName, Err: err}
	}

	rep := domain.DeviceReport{
		Row:        row.Index,
		DeviceType: row.DeviceType,
		DeviceName: row.DeviceName,
		CatalogID:  row.CatalogID,
	}

	for _, module := range row.Modules {
		rep.Modules = append(rep.Modules, r.plug(dev, module))
	}

	found := Interfaces(dev, r.logger)
	rep.Interfaces = len(found)
	r.ifaces = append(r.ifaces, found...)

	r.report.Devices = append(r.report.Devices, rep)
	return nil
}

func (r *run) plug(dev engineering.Device, module domain.ModuleSpec) domain.ModuleReport {
	mr := domain.ModuleReport{CatalogID: module.CatalogID, DisplayName: module.DisplayName}

	p, err := r.engine.Place(dev, module)
	if err != nil {
		mr.Status = domain.ModuleUnplaced
		mr.Error = err.Error()
		var pe *placement.PlacementError
		if errors.As(err, &pe) {
			mr.Probes = pe.Probes
			mr.ProbeErrors = pe.ProbeErrors
		}
		r.narrator.Failf("Could not plug module %s", module.TypeIdentifier())
		return mr
	}

	mr.Status = domain.ModulePlugged
	mr.Container = p.Slot.Container.Name()
	mr.Interface = p.Slot.Interface
	mr.Position = p.Slot.Position
	mr.Probes = p.Probes
	mr.ProbeErrors = p.ProbeErrors
	r.narrator.Successf("Plugged %s into %s at position %d", module.TypeIdentifier(), p.Slot.Interface, p.Slot.Position)

	if p.RenameErr != nil {
		mr.Error = p.RenameErr.Error()
		r.narrator.Warnf("Plugged %s but could not name it: %v", module.TypeIdentifier(), p.RenameErr)
	}
	return mr
}

// Interfaces discovers the network services of dev. Only items exactly two
// levels below the device are asked; the answer order is the tool's item
// order.
func Interfaces(dev engineering.Device, logger zerolog.Logger) []topology.Interface {
	var found []topology.Interface
	for _, item := range dev.Items() {
		for _, sub := range item.Items() {
			ni, err := sub.NetworkInterface()
			if err != nil {
				if !errors.Is(err, engineering.ErrNoNetworkService) {
					logger.Debug().Err(err).Str("device", dev.Name()).Str("item", sub.Name()).
						Msg("Network service lookup failed")
				}
				continue
			}
			found = append(found, topology.Interface{Device: dev.Name(), Item: sub.Name(), Service: ni})
		}
	}
	return found
}
