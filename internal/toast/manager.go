// Package toast tracks the live set of toast notifications and their
// auto-dismiss timers.
//
// A Manager owns two maps: the display set (id -> toast) and the pending
// timers (id -> timer). A timer entry exists exactly while its toast is live
// and was created with a timeout. Removing a toast, by timer or by Remove,
// stops its timer and deletes the record under the same lock, so readers never
// observe one without the other.
package toast

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"brew_console/internal/clock"
	"brew_console/internal/domain"
	"brew_console/internal/model"
)

const (
	DefaultTimeout = 1500 * time.Millisecond

	maxIDAttempts = 16
)

// IDGenerator returns a fresh toast id. It is called with the manager lock
// held and must not call back into the manager.
type IDGenerator func() string

// Subscriber receives every state transition once, in the order the
// transitions happened. It runs outside the manager lock.
type Subscriber func(model.ToastEvent)

type Option func(*Manager)

func WithIDGenerator(gen IDGenerator) Option {
	return func(m *Manager) {
		m.newID = gen
	}
}

func WithDefaultTimeout(d time.Duration) Option {
	return func(m *Manager) {
		m.defaultTimeout = d
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		m.log = logger
	}
}

type pending struct {
	timer clock.Timer
}

type entry struct {
	toast model.Toast
	seq   uint64
}

type subscription struct {
	id uint64
	fn Subscriber
}

type Manager struct {
	clock          clock.Clock
	newID          IDGenerator
	defaultTimeout time.Duration
	log            *zap.Logger

	mu          sync.Mutex
	seq         uint64
	toasts      map[string]entry
	timers      map[string]*pending
	subs        []subscription
	nextSubID   uint64
	queue       []model.ToastEvent
	dispatching bool
}

func NewManager(clk clock.Clock, opts ...Option) *Manager {
	m := &Manager{
		clock:          clk,
		newID:          uuid.NewString,
		defaultTimeout: DefaultTimeout,
		log:            zap.NewNop(),
		toasts:         make(map[string]entry),
		timers:         make(map[string]*pending),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create adds a toast and returns its id. When info carries a timeout the
// toast removes itself once the timeout elapses; negative timeouts are treated
// as zero. The toast is visible to readers as soon as Create returns.
func (m *Manager) Create(info model.ToastInfo) string {
	return m.CreateToast(info).ID
}

// CreateToast is Create returning the stored record instead of only its id.
func (m *Manager) CreateToast(info model.ToastInfo) model.Toast {
	m.mu.Lock()

	id := m.nextIDLocked()
	m.seq++
	if info.TimeoutMS != nil {
		ms := *info.TimeoutMS
		info.TimeoutMS = &ms
	}
	t := model.Toast{ToastInfo: info, ID: id, CreatedAt: m.clock.Now()}

	if d, ok := info.Timeout(); ok {
		if d < 0 {
			d = 0
		}
		p := &pending{}
		p.timer = m.clock.AfterFunc(d, func() { m.expire(id, p) })
		m.timers[id] = p
	}
	m.toasts[id] = entry{toast: t, seq: m.seq}

	m.log.Debug("toast created",
		zap.String("id", id),
		zap.String("style", info.Style),
		zap.Bool("auto_dismiss", info.TimeoutMS != nil),
	)
	m.queue = append(m.queue, model.ToastEvent{Type: model.ToastEventCreated, Toast: t})
	m.unlockAndDispatch()
	return t
}

// Remove dismisses the toast with the given id. Unknown ids are ignored.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	m.removeLocked(id, model.RemoveReasonDismissed)
	m.unlockAndDispatch()
}

func (m *Manager) Success(text string) string {
	return m.createStyled(text, domain.StyleSuccess)
}

func (m *Manager) Error(text string) string {
	return m.createStyled(text, domain.StyleError)
}

func (m *Manager) Info(text string) string {
	return m.createStyled(text, domain.StyleInfo)
}

func (m *Manager) Warning(text string) string {
	return m.createStyled(text, domain.StyleWarning)
}

func (m *Manager) createStyled(text, style string) string {
	return m.Create(model.ToastInfo{
		Text:      text,
		Style:     style,
		TimeoutMS: model.Millis(m.defaultTimeout),
	})
}

func (m *Manager) DefaultTimeout() time.Duration {
	return m.defaultTimeout
}

func (m *Manager) Get(id string) (model.Toast, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.toasts[id]
	return e.toast, ok
}

// Snapshot returns a copy of the display set keyed by id.
func (m *Manager) Snapshot() map[string]model.Toast {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]model.Toast, len(m.toasts))
	for id, e := range m.toasts {
		out[id] = e.toast
	}
	return out
}

// List returns the live toasts oldest first.
func (m *Manager) List() []model.Toast {
	m.mu.Lock()
	entries := make([]entry, 0, len(m.toasts))
	for _, e := range m.toasts {
		entries = append(entries, e)
	}
	m.mu.Unlock()

	slices.SortFunc(entries, func(a, b entry) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		default:
			return 0
		}
	})
	out := make([]model.Toast, len(entries))
	for i, e := range entries {
		out[i] = e.toast
	}
	return out
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.toasts)
}

// Subscribe registers fn for all future transitions. Calling the returned
// function stops delivery.
func (m *Manager) Subscribe(fn Subscriber) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextSubID++
	id := m.nextSubID
	m.subs = append(m.subs, subscription{id: id, fn: fn})
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.subs = slices.DeleteFunc(m.subs, func(s subscription) bool { return s.id == id })
	}
}

// expire is the timer path. It only acts if p is still the pending entry for
// id; a stale fire for an id that was removed (and possibly reused) is a no-op.
func (m *Manager) expire(id string, p *pending) {
	m.mu.Lock()
	if m.timers[id] != p {
		m.mu.Unlock()
		return
	}
	delete(m.timers, id)
	m.removeLocked(id, model.RemoveReasonExpired)
	m.unlockAndDispatch()
}

func (m *Manager) removeLocked(id, reason string) {
	if p, ok := m.timers[id]; ok {
		p.timer.Stop()
		delete(m.timers, id)
	}
	e, ok := m.toasts[id]
	if !ok {
		return
	}
	delete(m.toasts, id)

	m.log.Debug("toast removed", zap.String("id", id), zap.String("reason", reason))
	m.queue = append(m.queue, model.ToastEvent{Type: model.ToastEventRemoved, Reason: reason, Toast: e.toast})
}

func (m *Manager) nextIDLocked() string {
	var id string
	for i := 0; i < maxIDAttempts; i++ {
		id = m.newID()
		if _, live := m.toasts[id]; !live {
			return id
		}
	}
	m.log.Warn("toast id generator kept colliding", zap.String("id", id), zap.Int("attempts", maxIDAttempts))
	for n := m.seq + 1; ; n++ {
		candidate := fmt.Sprintf("%s-%d", id, n)
		if _, live := m.toasts[candidate]; !live {
			return candidate
		}
	}
}

// unlockAndDispatch releases m.mu after delivering queued events. Only one
// goroutine drains the queue at a time, which keeps delivery in transition
// order and lets subscribers call back into the manager.
func (m *Manager) unlockAndDispatch() {
	if m.dispatching {
		m.mu.Unlock()
		return
	}
	m.dispatching = true
	for len(m.queue) > 0 {
		ev := m.queue[0]
		m.queue = m.queue[1:]
		subs := slices.Clone(m.subs)
		m.mu.Unlock()
		for _, s := range subs {
			s.fn(ev)
		}
		m.mu.Lock()
	}
	m.dispatching = false
	m.mu.Unlock()
}
