// Package bridge drives the engineering tool through a bridge host.
//
// The vendor API is a .NET assembly, so tiaforge does not load it in
// process. A bridge host loads the assembly and exposes the object model
// over a websocket as JSON requests. Objects are referred to by opaque
// handles issued by the host.
//
// Client implements engineering.Portal on top of that connection. Server is
// the other side, exposing any engineering.Portal; it backs tests and lets
// the simulator be served to remote clients.
package bridge

import (
	"encoding/json"
	"errors"

	"tiaforge/internal/engineering"
)

// Method names understood by a bridge host
const (
	MethodOpen            = "portal.open"
	MethodClose           = "portal.close"
	MethodCreateProject   = "project.create"
	MethodSaveProject     = "project.save"
	MethodCreateDevice    = "device.create"
	MethodDeviceItems     = "device.items"
	MethodItemChildren    = "item.items"
	MethodCanPlugNew      = "item.can_plug_new"
	MethodPlugNew         = "item.plug_new"
	MethodSetName         = "item.set_name"
	MethodNetwork         = "item.network_interface"
	MethodSetAddress      = "network.set_address"
	MethodCreateSubnet    = "network.create_and_connect_subnet"
	MethodConnectSubnet   = "network.connect_to_subnet"
	MethodCreateIoSystem  = "network.create_io_system"
	MethodIoConnectors    = "network.io_connector_count"
	MethodConnectIoSystem = "network.connect_to_io_system"
)

// Error codes mapped onto engineering sentinel errors
const (
	CodeNoNetworkService = "no_network_service"
	CodeNoIoController   = "no_io_controller"
	CodeNoIoConnector    = "no_io_connector"
	CodeClosed           = "closed"
	CodeUnknownHandle    = "unknown_handle"
	CodeUnknownMethod    = "unknown_method"
)

// Request is one call sent to the host
type Request struct {
	ID     uint64          `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// Response answers the Request with the same ID
type Response struct {
	ID     uint64          `json:"id"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *RemoteError    `json:"error,omitempty"`
}

// RemoteError is an error raised inside the host
type RemoteError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func (e *RemoteError) Error() string {
	if e.Code != "" {
		return e.Code + ": " + e.Message
	}
	return e.Message
}

// Is maps well-known codes onto engineering sentinels
func (e *RemoteError) Is(target error) bool {
	switch e.Code {
	case CodeNoNetworkService:
		return target == engineering.ErrNoNetworkService
	case CodeNoIoController:
		return target == engineering.ErrNoIoController
	case CodeNoIoConnector:
		return target == engineering.ErrNoIoConnector
	case CodeClosed:
		return target == engineering.ErrClosed
	}
	return false
}

// toRemote converts a local error into its wire form
func toRemote(err error) *RemoteError {
	var re *RemoteError
	if errors.As(err, &re) {
		return re
	}
	code := ""
	switch {
	case errors.Is(err, engineering.ErrNoNetworkService):
		code = CodeNoNetworkService
	case errors.Is(err, engineering.ErrNoIoController):
		code = CodeNoIoController
	case errors.Is(err, engineering.ErrNoIoConnector):
		code = CodeNoIoConnector
	case errors.Is(err, engineering.ErrClosed):
		code = CodeClosed
	}
	return &RemoteError{Code: code, Message: err.Error()}
}

// OpenParams starts the tool inside the host
type OpenParams struct {
	Version       string `json:"version"`
	AssemblyPath  string `json:"assembly_path"`
	WithInterface bool   `json:"with_user_interface"`
}

// HandleParams addresses a single object
type HandleParams struct {
	Handle string `json:"handle"`
}

// ProjectParams creates a project
type ProjectParams struct {
	Dir  string `json:"dir"`
	Name string `json:"name"`
}

// DeviceParams creates a device in a project
type DeviceParams struct {
	Project        string `json:"project"`
	TypeIdentifier string `json:"type_identifier"`
	Name           string `json:"name"`
}

// PlugParams addresses a slot on an item
type PlugParams struct {
	Handle         string `json:"handle"`
	TypeIdentifier string `json:"type_identifier"`
	Interface      string `json:"interface"`
	Position       int    `json:"position"`
}

// NameParams renames an item or names a new subnet / IO system
type NameParams struct {
	Handle string `json:"handle"`
	Name   string `json:"name"`
}

// AddressParams sets an interface address
type AddressParams struct {
	Handle  string `json:"handle"`
	Address string `json:"address"`
}

// LinkParams connects an interface to a subnet or IO system
type LinkParams struct {
	Handle string `json:"handle"`
	Target string `json:"target"`
}

// Object is a handle plus the name the host reports for it
type Object struct {
	Handle string `json:"handle"`
	Name   string `json:"name"`
}

// ObjectList is a list of objects
type ObjectList struct {
	Items []Object `json:"items"`
}

// BoolResult carries a yes/no answer
type BoolResult struct {
	OK bool `json:"ok"`
}

// CountResult carries a count
type CountResult struct {
	Count int `json:"count"`
}
