package resilience

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"mesto/pkg/logger"
)

// State - состояние выключателя.
type State int

// Состояния выключателя.
const (
	// StateClosed - вызовы проходят.
	StateClosed State = iota
	// StateOpen - вызовы отклоняются до истечения OpenTimeout.
	StateOpen
	// StateHalfOpen - пропускаются пробные вызовы.
	StateHalfOpen
)

// Константы для логирования.
const (
	LogBreakerOpened   = "circuit breaker opened"
	LogBreakerHalfOpen = "circuit breaker half-open, probing"
	LogBreakerClosed   = "circuit breaker closed"
)

// ErrBreakerOpen возвращается, пока выключатель разомкнут.
var ErrBreakerOpen = errors.New("circuit breaker is open")

// BreakerConfig содержит настройки выключателя.
type BreakerConfig struct {
	// FailThreshold - число ошибок подряд, после которого выключатель размыкается.
	FailThreshold int
	// OpenTimeout - время в разомкнутом состоянии до первой пробы.
	OpenTimeout time.Duration
	// ProbeSuccesses - число успешных проб для замыкания.
	ProbeSuccesses int
}

// Breaker отключает вызовы зависимости после серии ошибок.
type Breaker struct {
	name   string
	config BreakerConfig
	now    func() time.Time

	mu        sync.Mutex
	state     State
	failures  int
	successes int
	openedAt  time.Time
}

// NewBreaker создает выключатель в замкнутом состоянии.
func NewBreaker(name string, config BreakerConfig) *Breaker {
	if config.FailThreshold < 1 {
		config.FailThreshold = 1
	}
	if config.ProbeSuccesses < 1 {
		config.ProbeSuccesses = 1
	}
	return &Breaker{name: name, config: config, now: time.Now}
}

// Do выполняет fn, если выключатель замкнут или пропускает пробу.
func (b *Breaker) Do(ctx context.Context, fn func() error) error {
	if !b.allow(ctx) {
		return ErrBreakerOpen
	}

	err := fn()
	b.record(ctx, err)
	return err
}

// State возвращает текущее состояние.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) allow(ctx context.Context) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != StateOpen {
		return true
	}
	if b.now().Sub(b.openedAt) < b.config.OpenTimeout {
		return false
	}

	b.state = StateHalfOpen
	b.successes = 0
	logger.Log(ctx).Info(ctx, LogBreakerHalfOpen, zap.String("breaker", b.name))
	return true
}

func (b *Breaker) record(ctx context.Context, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	log := logger.Log(ctx).With(zap.String("breaker", b.name))

	if err != nil {
		b.failures++
		if b.state == StateHalfOpen || b.failures >= b.config.FailThreshold {
			if b.state != StateOpen {
				log.Warn(ctx, LogBreakerOpened, zap.Int("failures", b.failures), zap.Error(err))
			}
			b.state = StateOpen
			b.openedAt = b.now()
		}
		return
	}

	switch b.state {
	case StateClosed:
		b.failures = 0
	case StateHalfOpen:
		b.successes++
		if b.successes >= b.config.ProbeSuccesses {
			b.state = StateClosed
			b.failures = 0
			log.Info(ctx, LogBreakerClosed)
		}
	}
}
