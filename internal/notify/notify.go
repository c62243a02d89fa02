package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Severity string

const SeveritySuccess Severity = "success"
const SeverityError Severity = "error"
const SeverityWarning Severity = "warning"
const SeverityInfo Severity = "info"

// Sticky - уведомление без автоудаления
const Sticky time.Duration = -1

type Notification struct {
	ID        uuid.UUID
	Message   string
	Severity  Severity
	CreatedAt time.Time
	ExpiresAt time.Time // нулевое время = живёт до явного удаления
}

type Notifier interface {
	Notify(message string, severity Severity, duration time.Duration) uuid.UUID
}

type Sink interface {
	Render(n *Notification)
}

type Emitter struct {
	mtx     *sync.RWMutex
	active  map[uuid.UUID]*Notification
	ids     []uuid.UUID
	sink    Sink
	timeout time.Duration
}

func NewEmitter(sink Sink, defaultDuration *time.Duration) *Emitter {
	var timeoutToSet time.Duration
	if defaultDuration == nil {
		timeoutToSet = 4 * time.Second
	} else {
		timeoutToSet = *defaultDuration
	}
	return &Emitter{
		mtx:     &sync.RWMutex{},
		active:  make(map[uuid.UUID]*Notification),
		ids:     []uuid.UUID{},
		sink:    sink,
		timeout: timeoutToSet,
	}
}

// Notify регистрирует уведомление и отдаёт его id.
// duration == 0 означает длительность по умолчанию, Sticky - без автоудаления
func (e *Emitter) Notify(message string, severity Severity, duration time.Duration) uuid.UUID {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	if duration == 0 {
		duration = e.timeout
	}

	now := time.Now()
	n := &Notification{
		ID:        uuid.New(),
		Message:   message,
		Severity:  severity,
		CreatedAt: now,
	}
	if duration != Sticky {
		n.ExpiresAt = now.Add(duration)
	}

	e.active[n.ID] = n
	e.ids = append(e.ids, n.ID)

	if e.sink != nil {
		e.sink.Render(n)
	}
	return n.ID
}

func (e *Emitter) Remove(id uuid.UUID) {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	e.removeLocked(id)
}

func (e *Emitter) removeLocked(id uuid.UUID) {
	if _, ok := e.active[id]; !ok {
		return
	}
	delete(e.active, id)
	for ind, val := range e.ids {
		if val == id {
			e.ids = append(e.ids[:ind], e.ids[ind+1:]...)
			break
		}
	}
}

func (e *Emitter) Clear() {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	e.active = make(map[uuid.UUID]*Notification)
	e.ids = []uuid.UUID{}
}

// Active отдаёт живые уведомления в порядке появления
func (e *Emitter) Active() []*Notification {
	e.mtx.RLock()
	defer e.mtx.RUnlock()

	res := make([]*Notification, 0, len(e.ids))
	for _, id := range e.ids {
		res = append(res, e.active[id])
	}
	return res
}
