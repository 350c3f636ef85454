package service

import (
	"tiaforge/internal/domain"
	"tiaforge/internal/sheet"
)

// Plan is what a run would attempt for an input, worked out without
// touching the engineering tool
type Plan struct {
	Input         string
	ModuleColumns []sheet.ModuleColumn
	Rows          []domain.DeviceRow
}

// Modules counts the module placements the plan would attempt
func (p *Plan) Modules() int {
	n := 0
	for _, r := range p.Rows {
		n += len(r.Modules)
	}
	return n
}

// Plan reads and parses input the same way Run does
func (c *Creator) Plan(input string) (*Plan, error) {
	rows, cols, err := sheet.Load(input)
	if err != nil {
		return nil, &RunError{Stage: StageInput, Err: err}
	}
	return &Plan{Input: input, ModuleColumns: cols, Rows: rows}, nil
}
