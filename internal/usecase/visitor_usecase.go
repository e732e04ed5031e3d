package usecase

import (
	"context"
	"sync/atomic"

	"careergps/internal/logger"
	"careergps/internal/metrics"
)

const VisitorCountKey = "visitors:count"

type Counter interface {
	Incr(ctx context.Context, key string) (int64, error)
	GetInt(ctx context.Context, key string) (int64, error)
}

type Broadcaster interface {
	BroadcastCount(count int64)
}

// VisitorUsecase counts page visits in Redis and falls back to a
// process-local counter when Redis fails.
type VisitorUsecase struct {
	counter Counter
	hub     Broadcaster
	local   atomic.Int64
	log     logger.Logger
}

func NewVisitorUsecase(counter Counter, hub Broadcaster, log logger.Logger) *VisitorUsecase {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &VisitorUsecase{counter: counter, hub: hub, log: log}
}

func (u *VisitorUsecase) Hit(ctx context.Context) int64 {
	var n int64
	if u.counter != nil {
		v, err := u.counter.Incr(ctx, VisitorCountKey)
		if err == nil {
			n = v
			u.local.Store(v)
		} else {
			u.log.Debug("visitor counter fallback", map[string]interface{}{"error": err})
			n = u.local.Add(1)
		}
	} else {
		n = u.local.Add(1)
	}

	metrics.VisitorHits.Inc()
	if u.hub != nil {
		u.hub.BroadcastCount(n)
	}
	return n
}

// Current reads the count without incrementing it.
func (u *VisitorUsecase) Current(ctx context.Context) int64 {
	if u.counter != nil {
		if v, err := u.counter.GetInt(ctx, VisitorCountKey); err == nil {
			return v
		}
	}
	return u.local.Load()
}
