// Package notify delivers case notifications off the request path.
package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notification tells the people involved in a case that something changed.
type Notification struct {
	ID         string
	CaseID     string
	Kind       string
	Recipients []string
	Subject    string
	Body       string

	attempt  int
	enqueued time.Time
}

// Sender hands a notification to a delivery channel (mail, chat, push).
type Sender interface {
	Send(ctx context.Context, n Notification) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, n Notification) error

// Send calls f.
func (f SenderFunc) Send(ctx context.Context, n Notification) error { return f(ctx, n) }

// Config sizes the worker pool.
type Config struct {
	Workers    int
	BufferSize int
	MaxRetries int
	RetryDelay time.Duration
	Logger     *zap.Logger
}

// ErrNotRunning is returned by Notify before Start or after Stop.
var ErrNotRunning = errors.New("notification dispatcher not running")

// ErrQueueFull is returned when the buffer cannot take another notification.
var ErrQueueFull = errors.New("notification queue full")

// Dispatcher is a best-effort in-memory delivery pool. Lost notifications
// never affect workflow state.
type Dispatcher struct {
	sender     Sender
	workers    int
	maxRetries int
	retryDelay time.Duration
	logger     *zap.Logger

	queue   chan Notification
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
}

// NewDispatcher builds a dispatcher around sender.
func NewDispatcher(sender Sender, cfg Config) *Dispatcher {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = cfg.Workers * 16
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if sender == nil {
		sender = LogSender(cfg.Logger)
	}
	return &Dispatcher{
		sender:     sender,
		workers:    cfg.Workers,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		logger:     cfg.Logger,
		queue:      make(chan Notification, cfg.BufferSize),
	}
}

// Start launches the workers. Calling it twice is a no-op.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return
	}
	d.ctx, d.cancel = context.WithCancel(ctx)
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.work()
	}
	d.running = true
	d.logger.Info("notification dispatcher started", zap.Int("workers", d.workers))
}

// Stop cancels the workers and waits for them. Queued notifications are dropped.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return
	}
	d.running = false
	d.cancel()
	d.mu.Unlock()
	d.wg.Wait()
	d.logger.Info("notification dispatcher stopped", zap.Int("dropped", len(d.queue)))
}

// Notify queues n without blocking.
func (d *Dispatcher) Notify(n Notification) error {
	d.mu.Lock()
	running := d.running
	d.mu.Unlock()
	if !running {
		return ErrNotRunning
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.enqueued.IsZero() {
		n.enqueued = time.Now().UTC()
	}
	select {
	case d.queue <- n:
		return nil
	default:
		return ErrQueueFull
	}
}

func (d *Dispatcher) work() {
	defer d.wg.Done()
	for {
		select {
		case <-d.ctx.Done():
			return
		case n := <-d.queue:
			if err := d.sender.Send(d.ctx, n); err != nil {
				d.retry(n, err)
			}
		}
	}
}

func (d *Dispatcher) retry(n Notification, err error) {
	n.attempt++
	fields := []zap.Field{
		zap.String("notification_id", n.ID),
		zap.String("case_id", n.CaseID),
		zap.String("kind", n.Kind),
		zap.Int("attempt", n.attempt),
		zap.Error(err),
	}
	if n.attempt > d.maxRetries {
		d.logger.Error("notification dropped after retries", fields...)
		return
	}
	d.logger.Warn("notification failed, retrying", fields...)

	go func() {
		timer := time.NewTimer(d.retryDelay)
		defer timer.Stop()
		select {
		case <-d.ctx.Done():
		case <-timer.C:
			if err := d.Notify(n); err != nil {
				d.logger.Error("failed to requeue notification", zap.String("notification_id", n.ID), zap.Error(err))
			}
		}
	}()
}

// LogSender writes notifications to the log. It is the default channel until
// a real transport is configured.
func LogSender(logger *zap.Logger) Sender {
	return SenderFunc(func(_ context.Context, n Notification) error {
		logger.Info("notification",
			zap.String("case_id", n.CaseID),
			zap.String("kind", n.Kind),
			zap.Strings("recipients", n.Recipients),
			zap.String("subject", n.Subject),
		)
		return nil
	})
}
