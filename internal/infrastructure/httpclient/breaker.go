package httpclient

import (
	"sync"
	"time"
)

// CircuitBreaker corta-circuito simple por host.
//
// Cuenta fallos consecutivos por host y abre el circuito al superar el umbral;
// tras el periodo de enfriamiento se rearma solo. Los 4xx no cuentan como
// fallo: solo errores de red y 5xx.
type CircuitBreaker struct {
	mu               sync.Mutex
	failureThreshold int
	resetTimeout     time.Duration
	failures         map[string]int
	trippedUntil     map[string]time.Time
}

// NewCircuitBreaker construye el breaker con umbral de fallos y enfriamiento dados.
func NewCircuitBreaker(failureThreshold int, resetTimeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		failureThreshold: failureThreshold,
		resetTimeout:     resetTimeout,
		failures:         make(map[string]int),
		trippedUntil:     make(map[string]time.Time),
	}
}

// RecordFailure registra un fallo; al llegar al umbral abre el circuito del host.
func (b *CircuitBreaker) RecordFailure(host string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[host]++
	if b.failures[host] >= b.failureThreshold {
		b.trippedUntil[host] = time.Now().Add(b.resetTimeout)
	}
}

// RecordSuccess limpia el contador de fallos del host.
func (b *CircuitBreaker) RecordSuccess(host string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.failures, host)
	delete(b.trippedUntil, host)
}

// CanRequest indica si se puede llamar al host; rearma el circuito si ya pasó el enfriamiento.
func (b *CircuitBreaker) CanRequest(host string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	until, ok := b.trippedUntil[host]
	if !ok {
		return true
	}
	if time.Now().After(until) {
		delete(b.trippedUntil, host)
		delete(b.failures, host)
		return true
	}
	return false
}
