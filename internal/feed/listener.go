// Package feed delivers change notifications for the email
// verification table. Row changes fire a Postgres trigger that calls
// pg_notify; a dedicated connection LISTENs and fans the signal out to
// subscribers. Subscribers reload the whole set rather than patch
// incrementally.
package feed

import (
	"context"
	"sync"
	"time"

	"github.com/UgurucanDuman/Autonova/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Channel is the pg_notify channel raised by the migration triggers.
const Channel = "autonova_verifications"

type Listener struct {
	pool *pgxpool.Pool
	log  *logger.Logger

	mu          sync.RWMutex
	subscribers map[int]chan struct{}
	nextID      int
}

func NewListener(pool *pgxpool.Pool, log *logger.Logger) *Listener {
	return &Listener{
		pool:        pool,
		log:         log.Named("feed"),
		subscribers: make(map[int]chan struct{}),
	}
}

// Subscribe registers for change signals. The channel carries no
// payload; any signal means "reload". Callers must Unsubscribe with
// the returned id on teardown.
func (l *Listener) Subscribe() (int, <-chan struct{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	id := l.nextID
	ch := make(chan struct{}, 1)
	l.subscribers[id] = ch
	return id, ch
}

func (l *Listener) Unsubscribe(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if ch, ok := l.subscribers[id]; ok {
		delete(l.subscribers, id)
		close(ch)
	}
}

func (l *Listener) broadcast() {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, ch := range l.subscribers {
		select {
		case ch <- struct{}{}:
		default:
			// a pending signal already queued a reload
		}
	}
}

// Run blocks on LISTEN until ctx is cancelled, reconnecting with a
// short backoff after connection loss.
func (l *Listener) Run(ctx context.Context) {
	for {
		if err := l.listen(ctx); err != nil {
			if ctx.Err() != nil {
				l.log.Info("listener stopped")
				return
			}
			l.log.Warnw("listen loop failed, reconnecting", "error", err)
		}

		select {
		case <-ctx.Done():
			l.log.Info("listener stopped")
			return
		case <-time.After(3 * time.Second):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+Channel); err != nil {
		return err
	}
	l.log.Infow("listening for verification changes", "channel", Channel)

	for {
		if _, err := conn.Conn().WaitForNotification(ctx); err != nil {
			return err
		}
		l.broadcast()
	}
}
