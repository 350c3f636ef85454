// Package domain defines the values passed between the spreadsheet reader,
// the placement and topology engines and the run journal.
//
// # Rows
//
// DeviceRow is one normalized spreadsheet row: the device to create, its
// network identity and the ModuleSpec list to plug into it. Order numbers
// are kept raw; TypeIdentifier adds the catalog prefix the engineering tool
// expects.
//
// # Reports
//
// Report records one creation run: a DeviceReport per processed row with a
// ModuleReport per requested module, and an InterfaceReport per network
// interface the topology pass saw. RunSummary is the condensed form listed
// by the journal.
//
// The package has no dependencies beyond the standard library.
package domain
