package cache

import (
	"sync"
	"time"
)

// Cache es un caché en memoria con TTL por entrada. Se usa para respuestas
// upstream relativamente estáticas (disponibilidad de inventario, sistemas de
// precio). Las entradas expiradas se eliminan al consultarlas.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
}

type entry struct {
	expiresAt time.Time
	value     any
}

// New crea un caché vacío.
func New() *Cache {
	return &Cache{entries: make(map[string]entry)}
}

// Set guarda un valor con el TTL indicado.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{expiresAt: time.Now().Add(ttl), value: value}
}

// Get devuelve el valor y true si existe y no expiró; la entrada expirada se elimina.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

// Clear vacía el caché por completo.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}
