package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"tiaforge/internal/engineering"
)

// Client is a Portal backed by a bridge host connection
type Client struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	nextID uint64
	closed bool
	logger zerolog.Logger
}

// Dial connects to the host at url and opens the tool with params
func Dial(ctx context.Context, url string, params OpenParams, logger zerolog.Logger) (*Client, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dial bridge %s: %w (HTTP %s)", url, err, resp.Status)
		}
		return nil, fmt.Errorf("dial bridge %s: %w", url, err)
	}

	c := &Client{conn: conn, logger: logger.With().Str("component", "bridge").Logger()}
	if err := c.call(MethodOpen, params, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("open portal V%s: %w", params.Version, err)
	}
	c.logger.Info().Str("url", url).Str("version", params.Version).Msg("Bridge portal opened")
	return c, nil
}

// call sends one request and waits for its response. Calls are serialized:
// the connection carries one request at a time.
func (c *Client) call(method string, params, result any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return engineering.ErrClosed
	}

	c.nextID++
	req := Request{ID: c.nextID, Method: method}
	if params != nil {
		raw, err := json.Marshal(params)
		if err != nil {
			return fmt.Errorf("encode %s params: %w", method, err)
		}
		req.Params = raw
	}

	if err := c.conn.WriteJSON(req); err != nil {
		return fmt.Errorf("send %s: %w", method, err)
	}

	for {
		var resp Response
		if err := c.conn.ReadJSON(&resp); err != nil {
			return fmt.Errorf("receive %s: %w", method, err)
		}
		if resp.ID != req.ID {
			c.logger.Warn().Uint64("id", resp.ID).Uint64("want", req.ID).Msg("Dropping stale bridge response")
			continue
		}
		if resp.Error != nil {
			c.logger.Debug().Str("method", method).Str("error", resp.Error.Error()).Msg("Bridge call failed")
			return resp.Error
		}
		if result != nil && len(resp.Result) > 0 {
			if err := json.Unmarshal(resp.Result, result); err != nil {
				return fmt.Errorf("decode %s result: %w", method, err)
			}
		}
		return nil
	}
}

// CreateProject creates a project through the host
func (c *Client) CreateProject(dir, name string) (engineering.Project, error) {
	var obj Object
	if err := c.call(MethodCreateProject, ProjectParams{Dir: dir, Name: name}, &obj); err != nil {
		return nil, err
	}
	return &remoteProject{c: c, obj: obj}, nil
}

// Close shuts the tool down and closes the connection
func (c *Client) Close() error {
	callErr := c.call(MethodClose, nil, nil)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	if err := c.conn.Close(); err != nil {
		return err
	}
	return callErr
}

func (c *Client) items(method, handle string) []engineering.Item {
	var list ObjectList
	if err := c.call(method, HandleParams{Handle: handle}, &list); err != nil {
		// The tool's item collections cannot fail; a transport error here
		// surfaces on the next call that returns an error.
		c.logger.Error().Err(err).Str("handle", handle).Msg("Failed to list items")
		return nil
	}
	out := make([]engineering.Item, len(list.Items))
	for i, obj := range list.Items {
		out[i] = &remoteItem{c: c, obj: obj}
	}
	return out
}

type remoteProject struct {
	c   *Client
	obj Object
}

func (p *remoteProject) Name() string { return p.obj.Name }

func (p *remoteProject) CreateDevice(typeIdentifier, name string) (engineering.Device, error) {
	var obj Object
	err := p.c.call(MethodCreateDevice, DeviceParams{Project: p.obj.Handle, TypeIdentifier: typeIdentifier, Name: name}, &obj)
	if err != nil {
		return nil, err
	}
	return &remoteDevice{c: p.c, obj: obj}, nil
}

func (p *remoteProject) Save() error {
	return p.c.call(MethodSaveProject, HandleParams{Handle: p.obj.Handle}, nil)
}

type remoteDevice struct {
	c   *Client
	obj Object
}

func (d *remoteDevice) Name() string { return d.obj.Name }

func (d *remoteDevice) Items() []engineering.Item {
	return d.c.items(MethodDeviceItems, d.obj.Handle)
}

type remoteItem struct {
	c   *Client
	obj Object
}

func (i *remoteItem) Name() string { return i.obj.Name }

func (i *remoteItem) SetName(name string) error {
	if err := i.c.call(MethodSetName, NameParams{Handle: i.obj.Handle, Name: name}, nil); err != nil {
		return err
	}
	i.obj.Name = name
	return nil
}

func (i *remoteItem) Items() []engineering.Item {
	return i.c.items(MethodItemChildren, i.obj.Handle)
}

func (i *remoteItem) CanPlugNew(typeIdentifier, iface string, position int) (bool, error) {
	var res BoolResult
	err := i.c.call(MethodCanPlugNew, PlugParams{Handle: i.obj.Handle, TypeIdentifier: typeIdentifier, Interface: iface, Position: position}, &res)
	return res.OK, err
}

func (i *remoteItem) PlugNew(typeIdentifier, iface string, position int) (engineering.Item, error) {
	var obj Object
	err := i.c.call(MethodPlugNew, PlugParams{Handle: i.obj.Handle, TypeIdentifier: typeIdentifier, Interface: iface, Position: position}, &obj)
	if err != nil {
		return nil, err
	}
	return &remoteItem{c: i.c, obj: obj}, nil
}

func (i *remoteItem) NetworkInterface() (engineering.NetworkInterface, error) {
	var obj Object
	if err := i.c.call(MethodNetwork, HandleParams{Handle: i.obj.Handle}, &obj); err != nil {
		return nil, err
	}
	return &remoteNetwork{c: i.c, obj: obj}, nil
}

type remoteNetwork struct {
	c   *Client
	obj Object
}

func (n *remoteNetwork) SetAddress(address string) error {
	return n.c.call(MethodSetAddress, AddressParams{Handle: n.obj.Handle, Address: address}, nil)
}

func (n *remoteNetwork) CreateAndConnectSubnet(name string) (engineering.Subnet, error) {
	var obj Object
	if err := n.c.call(MethodCreateSubnet, NameParams{Handle: n.obj.Handle, Name: name}, &obj); err != nil {
		return nil, err
	}
	return newRef(obj), nil
}

func (n *remoteNetwork) ConnectToSubnet(subnet engineering.Subnet) error {
	ref, ok := subnet.(remoteRef)
	if !ok {
		return fmt.Errorf("subnet %s was not created through this bridge", subnet.Name())
	}
	return n.c.call(MethodConnectSubnet, LinkParams{Handle: n.obj.Handle, Target: ref.handle}, nil)
}

func (n *remoteNetwork) CreateIoSystem(name string) (engineering.IoSystem, error) {
	var obj Object
	if err := n.c.call(MethodCreateIoSystem, NameParams{Handle: n.obj.Handle, Name: name}, &obj); err != nil {
		return nil, err
	}
	return newRef(obj), nil
}

func (n *remoteNetwork) IoConnectorCount() int {
	var res CountResult
	if err := n.c.call(MethodIoConnectors, HandleParams{Handle: n.obj.Handle}, &res); err != nil {
		n.c.logger.Error().Err(err).Str("handle", n.obj.Handle).Msg("Failed to count IO connectors")
		return 0
	}
	return res.Count
}

func (n *remoteNetwork) ConnectToIoSystem(ioSystem engineering.IoSystem) error {
	ref, ok := ioSystem.(remoteRef)
	if !ok {
		return fmt.Errorf("IO system %s was not created through this bridge", ioSystem.Name())
	}
	return n.c.call(MethodConnectIoSystem, LinkParams{Handle: n.obj.Handle, Target: ref.handle}, nil)
}

// remoteRef is a subnet or IO system handle
type remoteRef struct {
	handle string
	name   string
}

func newRef(obj Object) remoteRef { return remoteRef{handle: obj.Handle, name: obj.Name} }

func (r remoteRef) Name() string { return r.name }
