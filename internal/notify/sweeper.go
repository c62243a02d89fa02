package notify

import (
	"context"
	"taskClient/internal/logger"
	"time"

	"go.uber.org/zap"
)

// фоновое удаление протухших уведомлений

func (e *Emitter) Start(ctx context.Context, interval *time.Duration) {
	var intervalToSet time.Duration
	if interval == nil {
		intervalToSet = 250 * time.Millisecond
	} else {
		intervalToSet = *interval
	}

	ticker := time.NewTicker(intervalToSet)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			e.Sweep()
		case <-ctx.Done():
			logger.Info("Notify: Фоновая очистка останавливается")
			return
		}
	}
}

func (e *Emitter) Sweep() {
	now := time.Now()

	e.mtx.Lock()
	defer e.mtx.Unlock()

	expired := []*Notification{}
	for _, n := range e.active {
		if !n.ExpiresAt.IsZero() && n.ExpiresAt.Before(now) {
			expired = append(expired, n)
		}
	}

	for _, n := range expired {
		e.removeLocked(n.ID)
	}

	if len(expired) > 0 {
		logger.Info("Notify: Очистка уведомлений", zap.Int("expired", len(expired)))
	}
}
