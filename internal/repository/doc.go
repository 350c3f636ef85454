// Package repository defines the run journal for tiaforge.
//
// Every project creation run produces a domain.Report. The journal keeps
// those reports so past runs can be listed and inspected after the
// engineering tool has been closed. The implementation is in the sqlite
// subpackage.
//
// # Schema
//
// A run is stored across four tables: runs, devices, modules and
// interfaces. Child rows are keyed by run id and cascade on delete. A run
// is written in a single transaction, so a partially journaled run is
// never visible.
//
// # Testing
//
// The sqlite journal is tested against in-memory databases.
package repository
