package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SetGet(t *testing.T) {
	c := New()
	c.Set("clave", 42, time.Minute)

	v, ok := c.Get("clave")
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestCache_EntradaExpirada(t *testing.T) {
	c := New()
	c.Set("clave", "valor", -time.Second) // ya expirada

	_, ok := c.Get("clave")
	assert.False(t, ok, "una entrada expirada no debe devolverse")

	// la expiración también elimina la entrada
	_, ok = c.Get("clave")
	assert.False(t, ok)
}

func TestCache_ClaveInexistente(t *testing.T) {
	c := New()
	_, ok := c.Get("nada")
	assert.False(t, ok)
}

func TestCache_Clear(t *testing.T) {
	c := New()
	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)

	c.Clear()

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestCache_SobrescribeValor(t *testing.T) {
	c := New()
	c.Set("clave", "viejo", time.Minute)
	c.Set("clave", "nuevo", time.Minute)

	v, ok := c.Get("clave")
	require.True(t, ok)
	assert.Equal(t, "nuevo", v)
}
