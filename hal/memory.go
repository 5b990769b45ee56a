package hal

import (
	"sort"
	"sync"
	"sync/atomic"

	"rfswitch-go/errcode"
)

// Memory is a Provider whose lines live in memory. It backs the simulator and
// the tests. Force changes a line level behind the owner's back, which models
// an external reset of one control line.
type Memory struct {
	claims

	mu    sync.Mutex
	known map[LineID]bool // nil => any id accepted
	lines map[LineID]*memLine
}

var _ Provider = (*Memory)(nil)

// NewMemory returns a provider restricted to ids, or accepting any id when
// none are given.
func NewMemory(ids ...LineID) *Memory {
	m := &Memory{lines: map[LineID]*memLine{}}
	if len(ids) > 0 {
		m.known = map[LineID]bool{}
		for _, id := range ids {
			m.known[id] = true
		}
	}
	return m
}

func (m *Memory) line(id LineID) *memLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.lines[id]
	if !ok {
		l = &memLine{id: id}
		m.lines[id] = l
	}
	return l
}

func (m *Memory) ClaimLine(owner string, id LineID) (Line, error) {
	if m.known != nil && !m.known[id] {
		return nil, errcode.Wrap(errcode.UnknownLine, "claim", string(id))
	}
	if err := m.claim(owner, id); err != nil {
		return nil, err
	}
	return m.line(id), nil
}

func (m *Memory) ReleaseLine(owner string, id LineID) { m.release(owner, id) }

// Level reports a line's level and whether it has been configured as output.
func (m *Memory) Level(id LineID) (level, output bool) {
	l := m.line(id)
	return l.level.Load(), l.output.Load()
}

// Force sets a line level without going through its owner.
func (m *Memory) Force(id LineID, level bool) { m.line(id).level.Store(level) }

// Writes reports how many Set/ConfigureOutput calls reached a line.
func (m *Memory) Writes(id LineID) int { return int(m.line(id).writes.Load()) }

// IDs lists every line seen so far, sorted.
func (m *Memory) IDs() []LineID {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LineID, 0, len(m.lines))
	for id := range m.lines {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

type memLine struct {
	id     LineID
	level  atomic.Bool
	output atomic.Bool
	writes atomic.Int32
}

func (l *memLine) ID() LineID { return l.id }

func (l *memLine) ConfigureOutput(initial bool) error {
	l.output.Store(true)
	l.Set(initial)
	return nil
}

func (l *memLine) Set(level bool) {
	l.writes.Add(1)
	l.level.Store(level)
}

func (l *memLine) Get() bool { return l.level.Load() }
