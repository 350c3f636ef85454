// Package service drives a complete project creation run.
//
// Creator opens the engineering tool, creates the project, reads the device
// table and then works through it row by row: create the device, plug its
// modules, collect its network interfaces. Once every row is done the
// collected interfaces are addressed and wired into one subnet and IO system,
// the project is saved and the run is journaled.
//
// Failures are split in two. Anything that stops the run (the tool will not
// start, the project or a device cannot be created, the input cannot be
// read) is returned as a *RunError. Module and interface failures are local:
// they are narrated, recorded in the report, and the run carries on.
package service
