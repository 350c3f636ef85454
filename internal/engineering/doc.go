// Package engineering defines the capability interface tiaforge drives to
// materialize a project in the engineering tool.
//
// The interfaces mirror the object model exposed by the tool's public API:
// a Portal hosts Projects, a Project creates Devices, and Devices expose a
// tree of Items. Items accept plug-in modules at (interface, position) slots
// and may provide a NetworkInterface service.
//
// # Backends
//
// The bridge subpackage talks to a host process that loads the vendor
// assembly and forwards calls over a websocket.
//
// The sim subpackage is an in-memory engineering tool driven by a YAML
// hardware catalog. It backs dry runs and tests.
//
// # Mocks
//
// mock_engineering.go holds gomock doubles for every interface, used by the
// placement and topology tests to assert exact call order.
package engineering
