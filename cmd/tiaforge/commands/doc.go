// Package commands defines the tiaforge CLI.
//
// Commands
//
//   - init       Write a default config file
//   - create     Create a project from a device spreadsheet
//   - plan       Show what create would do, optionally against the simulator
//   - runs       List journaled runs
//   - show       Print one journaled run
//   - versions   List installed engineering tool versions
//   - serve-sim  Serve the simulator over the bridge protocol
//
// The root command loads the config file and sets up logging before any
// subcommand runs. Flags given on the command line override config values.
package commands
