// Package cook drives guided cooking of one box entry: step navigation and
// a per-step countdown timer.
package cook

import (
	"fmt"
	"sync"
	"time"

	"chefy/domain"
	"chefy/entities"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type State string

const (
	SelectingMeal State = "selecting_meal"
	Cooking       State = "cooking"
)

type (
	Snapshot struct {
		State         State
		SessionID     uuid.UUID
		MealID        int
		DeliveryDate  entities.Day
		Step          int
		StepCount     int
		StepText      string
		TimeRemaining int
		Running       bool
	}

	Options struct {
		Ticker   TickerFactory
		Interval time.Duration
	}

	// Machine is safe for concurrent use. At most one session exists and it
	// owns at most one timer goroutine.
	Machine struct {
		mu        sync.Mutex
		newTicker TickerFactory
		interval  time.Duration
		listener  func(from, to State)
		session   *session
	}

	session struct {
		id        uuid.UUID
		entry     entities.BoxEntry
		steps     []string
		step      int
		remaining int
		running   bool
		loop      *tickLoop
	}
)

func NewMachine(opts Options) *Machine {
	if opts.Ticker == nil {
		opts.Ticker = NewTimeTicker
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	return &Machine{newTicker: opts.Ticker, interval: opts.Interval}
}

// OnTransition registers fn to be called after every state change, outside
// the machine's lock.
func (m *Machine) OnTransition(fn func(from, to State)) {
	m.mu.Lock()
	m.listener = fn
	m.mu.Unlock()
}

// Start begins cooking entry, replacing any current session. The previous
// timer goroutine has returned by the time Start does.
func (m *Machine) Start(entry entities.BoxEntry, steps []string) Snapshot {
	m.mu.Lock()
	from := m.state()
	var old *tickLoop
	if m.session != nil {
		old = m.session.detach()
	}
	m.session = &session{
		id:        uuid.New(),
		entry:     entry,
		steps:     append([]string(nil), steps...),
		remaining: domain.CookTimerSeconds,
	}
	snap := m.snapshot()
	listener := m.listener
	m.mu.Unlock()

	old.stop()
	log.Infow("cooking started", "meal_id", entry.Meal.ID, "date", entry.DeliveryDate.String(), "session", snap.SessionID.String())
	notify(listener, from, Cooking)
	return snap
}

// Next advances one step. On the last step it ends the session and reports
// finished.
func (m *Machine) Next() (Snapshot, bool, error) {
	m.mu.Lock()
	s := m.session
	if s == nil {
		m.mu.Unlock()
		return Snapshot{State: SelectingMeal}, false, domain.ErrNotCooking
	}
	if s.step < len(s.steps)-1 {
		s.step++
		snap := m.snapshot()
		m.mu.Unlock()
		return snap, false, nil
	}
	loop := s.detach()
	m.session = nil
	listener := m.listener
	m.mu.Unlock()

	loop.stop()
	log.Infow("cooking finished", "meal_id", s.entry.Meal.ID, "session", s.id.String())
	notify(listener, Cooking, SelectingMeal)
	return Snapshot{State: SelectingMeal}, true, nil
}

func (m *Machine) Prev() (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return m.snapshot(), domain.ErrNotCooking
	}
	if m.session.step > 0 {
		m.session.step--
	}
	return m.snapshot(), nil
}

// ToggleTimer pauses a running timer or resumes a paused one. Resuming at
// zero marks the timer running without starting a countdown.
func (m *Machine) ToggleTimer() (Snapshot, error) {
	m.mu.Lock()
	s := m.session
	if s == nil {
		m.mu.Unlock()
		return Snapshot{State: SelectingMeal}, domain.ErrNotCooking
	}

	var stopped *tickLoop
	if s.running {
		s.running = false
		stopped = s.detach()
	} else {
		s.running = true
		if s.remaining > 0 {
			m.startLoop(s)
		}
	}
	snap := m.snapshot()
	m.mu.Unlock()

	stopped.stop()
	return snap, nil
}

func (m *Machine) ResetTimer() (Snapshot, error) {
	m.mu.Lock()
	s := m.session
	if s == nil {
		m.mu.Unlock()
		return Snapshot{State: SelectingMeal}, domain.ErrNotCooking
	}
	s.running = false
	s.remaining = domain.CookTimerSeconds
	loop := s.detach()
	snap := m.snapshot()
	m.mu.Unlock()

	loop.stop()
	return snap, nil
}

// Exit discards the current session. It reports whether one existed.
func (m *Machine) Exit() bool {
	m.mu.Lock()
	s := m.session
	if s == nil {
		m.mu.Unlock()
		return false
	}
	loop := s.detach()
	m.session = nil
	listener := m.listener
	m.mu.Unlock()

	loop.stop()
	log.Infow("cooking exited", "meal_id", s.entry.Meal.ID, "session", s.id.String())
	notify(listener, Cooking, SelectingMeal)
	return true
}

func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

// Close stops any timer goroutine. The machine stays usable.
func (m *Machine) Close() {
	m.Exit()
}

// startLoop must be called with mu held and s.loop nil.
func (m *Machine) startLoop(s *session) {
	loop := newTickLoop()
	s.loop = loop
	id := s.id
	loop.run(m.newTicker(m.interval), func() bool {
		return m.tickFrom(id, loop)
	})
}

// tickFrom applies one elapsed second, flooring at zero. It is the only
// decrement and runs on the session's own timer goroutine. Ticks from a
// replaced session or a detached loop are dropped.
func (m *Machine) tickFrom(id uuid.UUID, loop *tickLoop) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.session
	if s == nil || s.id != id || s.loop != loop || !s.running {
		return false
	}
	if s.remaining > 0 {
		s.remaining--
	}
	if s.remaining == 0 {
		s.loop = nil
		return false
	}
	return true
}

// state must be called with mu held.
func (m *Machine) state() State {
	if m.session == nil {
		return SelectingMeal
	}
	return Cooking
}

// snapshot must be called with mu held.
func (m *Machine) snapshot() Snapshot {
	s := m.session
	if s == nil {
		return Snapshot{State: SelectingMeal}
	}
	snap := Snapshot{
		State:         Cooking,
		SessionID:     s.id,
		MealID:        s.entry.Meal.ID,
		DeliveryDate:  s.entry.DeliveryDate,
		Step:          s.step,
		StepCount:     len(s.steps),
		TimeRemaining: s.remaining,
		Running:       s.running,
	}
	if s.step < len(s.steps) {
		snap.StepText = s.steps[s.step]
	}
	return snap
}

// detach must be called with mu held; the caller stops the returned loop
// after unlocking.
func (s *session) detach() *tickLoop {
	loop := s.loop
	s.loop = nil
	return loop
}

func notify(fn func(from, to State), from, to State) {
	if fn != nil && from != to {
		fn(from, to)
	}
}

// Progress is the elapsed share of the step timer, from 0 to 1.
func (s Snapshot) Progress() float64 {
	if s.State != Cooking {
		return 0
	}
	return float64(domain.CookTimerSeconds-s.TimeRemaining) / float64(domain.CookTimerSeconds)
}

func (s Snapshot) TimeLabel() string {
	return FormatTime(s.TimeRemaining)
}

// FormatTime renders seconds as m:ss.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
