// Package store contiene el estado explícito del panel: colecciones de filas
// identificadas por ID, separadas de cualquier representación.
package store

import (
	"slices"
	"sync"
)

// Keyed es una fila con identidad estable.
type Keyed interface {
	Key() int64
}

// Collection guarda una lista ordenada de filas. Es segura para uso concurrente.
// Los valores devueltos son copias: modificarlos no altera la colección.
type Collection[T Keyed] struct {
	mu     sync.RWMutex
	items  []T
	loaded bool
}

// NewCollection crea una colección vacía sin cargar.
func NewCollection[T Keyed]() *Collection[T] {
	return &Collection[T]{}
}

// Loaded indica si la colección recibió al menos un Replace.
func (c *Collection[T]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// All devuelve una copia del contenido en su orden actual.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

// Len número de filas.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Replace sustituye todo el contenido (carga o recarga desde el backend).
func (c *Collection[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = slices.Clone(items)
	c.loaded = true
}

// Get devuelve la fila con el id indicado.
func (c *Collection[T]) Get(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.index(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Put reemplaza la fila con la misma clave. Devuelve false si no existe.
func (c *Collection[T]) Put(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.index(item.Key())
	if i < 0 {
		return false
	}
	c.items[i] = item
	return true
}

// Append agrega la fila al final.
func (c *Collection[T]) Append(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// Remove quita la fila y devuelve la posición que ocupaba, o -1.
func (c *Collection[T]) Remove(id int64) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.index(id)
	if i < 0 {
		return -1
	}
	c.items = slices.Delete(c.items, i, i+1)
	return i
}

// InsertAt reinserta una fila en la posición indicada; si la posición quedó
// fuera de rango se agrega al final. Si la clave ya está presente no hace nada.
func (c *Collection[T]) InsertAt(pos int, item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index(item.Key()) >= 0 {
		return
	}
	if pos < 0 || pos > len(c.items) {
		pos = len(c.items)
	}
	c.items = slices.Insert(c.items, pos, item)
}

func (c *Collection[T]) index(id int64) int {
	return slices.IndexFunc(c.items, func(it T) bool { return it.Key() == id })
}
