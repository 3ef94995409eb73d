package httpclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBreaker_AbrePorFallosConsecutivos(t *testing.T) {
	b := NewCircuitBreaker(3, time.Minute)

	assert.True(t, b.CanRequest("api.example.com"))
	b.RecordFailure("api.example.com")
	b.RecordFailure("api.example.com")
	assert.True(t, b.CanRequest("api.example.com"), "por debajo del umbral sigue cerrado")

	b.RecordFailure("api.example.com")
	assert.False(t, b.CanRequest("api.example.com"), "al llegar al umbral se abre")
}

func TestBreaker_ExitoLimpiaContador(t *testing.T) {
	b := NewCircuitBreaker(3, time.Minute)

	b.RecordFailure("host")
	b.RecordFailure("host")
	b.RecordSuccess("host")
	b.RecordFailure("host")
	b.RecordFailure("host")

	assert.True(t, b.CanRequest("host"), "un éxito reinicia la cuenta de fallos")
}

func TestBreaker_RearmaTrasEnfriamiento(t *testing.T) {
	b := NewCircuitBreaker(1, 10*time.Millisecond)

	b.RecordFailure("host")
	assert.False(t, b.CanRequest("host"))

	time.Sleep(20 * time.Millisecond)
	assert.True(t, b.CanRequest("host"), "pasado el enfriamiento vuelve a permitir llamadas")
}

func TestBreaker_HostsIndependientes(t *testing.T) {
	b := NewCircuitBreaker(1, time.Minute)

	b.RecordFailure("caido.example.com")
	assert.False(t, b.CanRequest("caido.example.com"))
	assert.True(t, b.CanRequest("sano.example.com"), "el circuito es por host")
}
