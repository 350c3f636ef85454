package bridge

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"tiaforge/internal/engineering"
)

// OpenFunc starts a portal for one bridge session
type OpenFunc func(params OpenParams) (engineering.Portal, error)

// Server exposes portals over websocket, one portal per connection
type Server struct {
	open     OpenFunc
	upgrader websocket.Upgrader
	logger   zerolog.Logger
}

// NewServer creates a bridge host serving portals created by open
func NewServer(open OpenFunc, logger zerolog.Logger) *Server {
	return &Server{
		open:   open,
		logger: logger.With().Str("component", "bridge-server").Logger(),
	}
}

// ServeHTTP upgrades the connection and serves requests until it closes
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error().Err(err).Msg("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	sess := &session{server: s, handles: make(map[string]any)}
	defer sess.shutdown()

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug().Err(err).Msg("Bridge session ended")
			}
			return
		}

		resp := Response{ID: req.ID}
		result, err := sess.dispatch(req)
		if err != nil {
			resp.Error = toRemote(err)
		} else if result != nil {
			raw, mErr := json.Marshal(result)
			if mErr != nil {
				resp.Error = &RemoteError{Message: mErr.Error()}
			} else {
				resp.Result = raw
			}
		}

		if err := conn.WriteJSON(resp); err != nil {
			s.logger.Error().Err(err).Msg("Failed to write bridge response")
			return
		}
	}
}

// session tracks the portal and handles of one connection
type session struct {
	server  *Server
	portal  engineering.Portal
	handles map[string]any
	next    int
}

func (s *session) shutdown() {
	if s.portal != nil {
		_ = s.portal.Close()
		s.portal = nil
	}
}

func (s *session) register(v any) string {
	s.next++
	h := strconv.Itoa(s.next)
	s.handles[h] = v
	return h
}

func (s *session) object(v any, name string) Object {
	return Object{Handle: s.register(v), Name: name}
}

func (s *session) list(items []engineering.Item) ObjectList {
	out := ObjectList{Items: make([]Object, len(items))}
	for i, it := range items {
		out.Items[i] = s.object(it, it.Name())
	}
	return out
}

func lookup[T any](s *session, handle string) (T, error) {
	var zero T
	v, ok := s.handles[handle]
	if !ok {
		return zero, &RemoteError{Code: CodeUnknownHandle, Message: "unknown handle " + handle}
	}
	t, ok := v.(T)
	if !ok {
		return zero, &RemoteError{Code: CodeUnknownHandle, Message: fmt.Sprintf("handle %s has type %T", handle, v)}
	}
	return t, nil
}

func decode[T any](req Request) (T, error) {
	var p T
	if len(req.Params) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return p, fmt.Errorf("decode %s params: %w", req.Method, err)
	}
	return p, nil
}

func (s *session) dispatch(req Request) (any, error) {
	if req.Method == MethodOpen {
		p, err := decode[OpenParams](req)
		if err != nil {
			return nil, err
		}
		if s.portal != nil {
			return nil, fmt.Errorf("portal already open")
		}
		portal, err := s.server.open(p)
		if err != nil {
			return nil, err
		}
		s.portal = portal
		s.server.logger.Info().Str("version", p.Version).Str("assembly", p.AssemblyPath).Msg("Portal opened")
		return nil, nil
	}
	if s.portal == nil {
		return nil, engineering.ErrClosed
	}

	switch req.Method {
	case MethodClose:
		s.shutdown()
		return nil, nil

	case MethodCreateProject:
		p, err := decode[ProjectParams](req)
		if err != nil {
			return nil, err
		}
		proj, err := s.portal.CreateProject(p.Dir, p.Name)
		if err != nil {
			return nil, err
		}
		return s.object(proj, proj.Name()), nil

	case MethodSaveProject:
		p, err := decode[HandleParams](req)
		if err != nil {
			return nil, err
		}
		proj, err := lookup[engineering.Project](s, p.Handle)
		if err != nil {
			return nil, err
		}
		return nil, proj.Save()

	case MethodCreateDevice:
		p, err := decode[DeviceParams](req)
		if err != nil {
			return nil, err
		}
		proj, err := lookup[engineering.Project](s, p.Project)
		if err != nil {
			return nil, err
		}
		dev, err := proj.CreateDevice(p.TypeIdentifier, p.Name)
		if err != nil {
			return nil, err
		}
		return s.object(dev, dev.Name()), nil

	case MethodDeviceItems:
		p, err := decode[HandleParams](req)
		if err != nil {
			return nil, err
		}
		dev, err := lookup[engineering.Device](s, p.Handle)
		if err != nil {
			return nil, err
		}
		return s.list(dev.Items()), nil

	case MethodItemChildren:
		p, err := decode[HandleParams](req)
		if err != nil {
			return nil, err
		}
		it, err := lookup[engineering.Item](s, p.Handle)
		if err != nil {
			return nil, err
		}
		return s.list(it.Items()), nil

	case MethodCanPlugNew:
		p, err := decode[PlugParams](req)
		if err != nil {
			return nil, err
		}
		it, err := lookup[engineering.Item](s, p.Handle)
		if err != nil {
			return nil, err
		}
		ok, err := it.CanPlugNew(p.TypeIdentifier, p.Interface, p.Position)
		if err != nil {
			return nil, err
		}
		return BoolResult{OK: ok}, nil

	case MethodPlugNew:
		p, err := decode[PlugParams](req)
		if err != nil {
			return nil, err
		}
		it, err := lookup[engineering.Item](s, p.Handle)
		if err != nil {
			return nil, err
		}
		mod, err := it.PlugNew(p.TypeIdentifier, p.Interface, p.Position)
		if err != nil {
			return nil, err
		}
		return s.object(mod, mod.Name()), nil

	case MethodSetName:
		p, err := decode[NameParams](req)
		if err != nil {
			return nil, err
		}
		it, err := lookup[engineering.Item](s, p.Handle)
		if err != nil {
			return nil, err
		}
		return nil, it.SetName(p.Name)

	case MethodNetwork:
		p, err := decode[HandleParams](req)
		if err != nil {
			return nil, err
		}
		it, err := lookup[engineering.Item](s, p.Handle)
		if err != nil {
			return nil, err
		}
		ni, err := it.NetworkInterface()
		if err != nil {
			return nil, err
		}
		return s.object(ni, it.Name()), nil

	case MethodSetAddress:
		p, err := decode[AddressParams](req)
		if err != nil {
			return nil, err
		}
		ni, err := lookup[engineering.NetworkInterface](s, p.Handle)
		if err != nil {
			return nil, err
		}
		return nil, ni.SetAddress(p.Address)

	case MethodCreateSubnet:
		p, err := decode[NameParams](req)
		if err != nil {
			return nil, err
		}
		ni, err := lookup[engineering.NetworkInterface](s, p.Handle)
		if err != nil {
			return nil, err
		}
		subnet, err := ni.CreateAndConnectSubnet(p.Name)
		if err != nil {
			return nil, err
		}
		return s.object(subnet, subnet.Name()), nil

	case MethodConnectSubnet:
		p, err := decode[LinkParams](req)
		if err != nil {
			return nil, err
		}
		ni, err := lookup[engineering.NetworkInterface](s, p.Handle)
		if err != nil {
			return nil, err
		}
		subnet, err := lookup[engineering.Subnet](s, p.Target)
		if err != nil {
			return nil, err
		}
		return nil, ni.ConnectToSubnet(subnet)

	case MethodCreateIoSystem:
		p, err := decode[NameParams](req)
		if err != nil {
			return nil, err
		}
		ni, err := lookup[engineering.NetworkInterface](s, p.Handle)
		if err != nil {
			return nil, err
		}
		io, err := ni.CreateIoSystem(p.Name)
		if err != nil {
			return nil, err
		}
		return s.object(io, io.Name()), nil

	case MethodIoConnectors:
		p, err := decode[HandleParams](req)
		if err != nil {
			return nil, err
		}
		ni, err := lookup[engineering.NetworkInterface](s, p.Handle)
		if err != nil {
			return nil, err
		}
		return CountResult{Count: ni.IoConnectorCount()}, nil

	case MethodConnectIoSystem:
		p, err := decode[LinkParams](req)
		if err != nil {
			return nil, err
		}
		ni, err := lookup[engineering.NetworkInterface](s, p.Handle)
		if err != nil {
			return nil, err
		}
		io, err := lookup[engineering.IoSystem](s, p.Target)
		if err != nil {
			return nil, err
		}
		return nil, ni.ConnectToIoSystem(io)
	}

	return nil, &RemoteError{Code: CodeUnknownMethod, Message: "unknown method " + req.Method}
}
