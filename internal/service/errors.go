package service

import "fmt"

// Stage names the step of a run that failed
type Stage string

const (
	StagePortal  Stage = "portal"
	StageProject Stage = "project"
	StageInput   Stage = "input"
	StageDevice  Stage = "device"
	StageSave    Stage = "save"
)

// RunError is a failure that aborted a run. Device-stage errors carry the
// offending row.
type RunError struct {
	Stage  Stage
	Row    int
	Device string
	Err    error
}

func (e *RunError) Error() string {
	if e.Stage == StageDevice {
		return fmt.Sprintf("%s: row %d (%s): %v", e.Stage, e.Row, e.Device, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}
