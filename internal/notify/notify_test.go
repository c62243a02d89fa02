package notify_test

import (
	"os"
	"sync"
	"testing"
	"time"

	"taskClient/internal/logger"
	"taskClient/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init(true)
	os.Exit(m.Run())
}

// recordingSink запоминает всё, что было показано
type recordingSink struct {
	mtx      sync.Mutex
	rendered []*notify.Notification
}

func (s *recordingSink) Render(n *notify.Notification) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.rendered = append(s.rendered, n)
}

func (s *recordingSink) count() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return len(s.rendered)
}

func TestEmitter_Notify(t *testing.T) {
	sink := &recordingSink{}
	e := notify.NewEmitter(sink, nil)

	id := e.Notify("Задача создана", notify.SeveritySuccess, 0)

	active := e.Active()
	require.Len(t, active, 1)
	assert.Equal(t, id, active[0].ID)
	assert.Equal(t, "Задача создана", active[0].Message)
	assert.Equal(t, notify.SeveritySuccess, active[0].Severity)
	// длительность по умолчанию даёт срок жизни
	assert.False(t, active[0].ExpiresAt.IsZero())
	assert.Equal(t, 1, sink.count())
}

func TestEmitter_Order(t *testing.T) {
	e := notify.NewEmitter(nil, nil)

	e.Notify("first", notify.SeverityInfo, 0)
	e.Notify("second", notify.SeverityInfo, 0)
	e.Notify("third", notify.SeverityInfo, 0)

	active := e.Active()
	require.Len(t, active, 3)
	assert.Equal(t, "first", active[0].Message)
	assert.Equal(t, "third", active[2].Message)
}

func TestEmitter_Remove(t *testing.T) {
	e := notify.NewEmitter(nil, nil)

	id := e.Notify("removable", notify.SeverityInfo, 0)
	e.Notify("keeper", notify.SeverityInfo, 0)

	e.Remove(id)
	// повторное удаление безопасно
	e.Remove(id)

	active := e.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "keeper", active[0].Message)
}

func TestEmitter_Clear(t *testing.T) {
	e := notify.NewEmitter(nil, nil)

	e.Notify("one", notify.SeverityInfo, 0)
	e.Notify("two", notify.SeverityError, 0)

	e.Clear()

	assert.Empty(t, e.Active())
}

func TestEmitter_Sweep(t *testing.T) {
	e := notify.NewEmitter(nil, nil)

	e.Notify("short lived", notify.SeverityInfo, time.Millisecond)
	e.Notify("sticky", notify.SeverityWarning, notify.Sticky)
	e.Notify("long lived", notify.SeverityInfo, time.Minute)

	time.Sleep(5 * time.Millisecond)
	e.Sweep()

	active := e.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "sticky", active[0].Message)
	assert.Equal(t, "long lived", active[1].Message)

	// sticky живёт до явного удаления
	assert.True(t, active[0].ExpiresAt.IsZero())
}
