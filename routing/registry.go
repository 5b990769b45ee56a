package routing

import (
	"rfswitch-go/drivers/pe42526"
	"rfswitch-go/errcode"
	"rfswitch-go/types"
)

// Switch is the part of a switch device the registry needs.
// *pe42526.Device satisfies it.
type Switch interface {
	Name() string
	Init() error
	Select(p pe42526.Pin) error
	Disable()
	IsSelected(p pe42526.Pin) bool
	Selected() pe42526.Pin
}

var _ Switch = (*pe42526.Device)(nil)

// Registry turns endpoint pairs into device selections and answers queries
// by reading every device back. It holds no connection state of its own.
//
// Not safe for concurrent use; it belongs to the main loop.
type Registry struct {
	m  *Matrix
	sw [types.NumEndpoints]Switch
}

// NewRegistry binds the matrix to one switch per endpoint, indexed A..G.
func NewRegistry(m *Matrix, sw [types.NumEndpoints]Switch) *Registry {
	return &Registry{m: m, sw: sw}
}

// Matrix returns the topology the registry routes over.
func (r *Registry) Matrix() *Matrix { return r.m }

// Init initialises every device and then forces them all to RFC.
func (r *Registry) Init() error {
	for _, s := range r.sw {
		if err := s.Init(); err != nil {
			return err
		}
	}
	r.DisconnectAll()
	return nil
}

func (r *Registry) entry(op string, x, y types.Endpoint) (types.Path, Entry, error) {
	if !x.Valid() || !y.Valid() {
		return types.Path{}, none, errcode.Wrap(errcode.InvalidEndpoint, op, "")
	}
	p := types.NewPath(x, y)
	if x == y {
		return p, none, errcode.Wrap(errcode.SameEndpoint, op, p.String())
	}
	e := r.m.Lookup(x, y)
	if !e.Supported() {
		return p, none, errcode.Wrap(errcode.UnsupportedPath, op, p.String())
	}
	return p, e, nil
}

// Connect joins x and y. A device already carrying another path is simply
// re-targeted; that path stops reading back as connected.
func (r *Registry) Connect(x, y types.Endpoint) error {
	p, e, err := r.entry("connect", x, y)
	if err != nil {
		return err
	}
	if err := r.sw[p.A].Select(e.Pin1); err != nil {
		return err
	}
	return r.sw[p.B].Select(e.Pin2)
}

// Disconnect returns both devices of x-y to RFC if, and only if, the path is
// live on readback. A path that is not live (never made, or overridden by a
// later Connect on one of its devices) is left alone and nil is returned.
func (r *Registry) Disconnect(x, y types.Endpoint) error {
	p, e, err := r.entry("disconnect", x, y)
	if err != nil {
		return err
	}
	if !r.live(p, e) {
		return nil
	}
	r.sw[p.A].Disable()
	r.sw[p.B].Disable()
	return nil
}

// DisconnectAll forces every device to RFC.
func (r *Registry) DisconnectAll() {
	for _, s := range r.sw {
		s.Disable()
	}
}

func (r *Registry) live(p types.Path, e Entry) bool {
	return r.sw[p.A].IsSelected(e.Pin1) && r.sw[p.B].IsSelected(e.Pin2)
}

// Query reports live paths in ascending order. With a nil filter every
// supported path is checked; otherwise only *filter, which must itself be
// supported. The result is never nil.
func (r *Registry) Query(filter *types.Path) ([]types.Path, error) {
	if filter != nil {
		// The diagonal is just another unroutable pair here.
		p := types.NewPath(filter.A, filter.B)
		e := r.m.Lookup(p.A, p.B)
		if !e.Supported() {
			return nil, errcode.Wrap(errcode.UnsupportedPath, "query", p.String())
		}
		if r.live(p, e) {
			return []types.Path{p}, nil
		}
		return []types.Path{}, nil
	}
	out := []types.Path{}
	for _, p := range r.m.paths {
		if r.live(p, r.m.t[p.A][p.B]) {
			out = append(out, p)
		}
	}
	return out, nil
}

// IsIdle reports whether every device reads back RFC.
func (r *Registry) IsIdle() bool {
	for _, s := range r.sw {
		if !s.IsSelected(pe42526.RFC) {
			return false
		}
	}
	return true
}

// States returns each device's decoded readback, indexed by endpoint.
func (r *Registry) States() [types.NumEndpoints]types.SwitchState {
	var out [types.NumEndpoints]types.SwitchState
	for i, s := range r.sw {
		out[i] = types.SwitchState{
			Endpoint: types.Endpoint(i).String(),
			Name:     s.Name(),
			Pin:      s.Selected().String(),
		}
	}
	return out
}
