package store_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panel-llantas/internal/application/store"
	"github.com/jhoicas/panel-llantas/internal/domain/entity"
)

func pedidos(ids ...int64) []entity.Order {
	out := make([]entity.Order, 0, len(ids))
	for _, id := range ids {
		out = append(out, entity.Order{ID: id, Estado: entity.OrderPendiente})
	}
	return out
}

func keys(list []entity.Order) []int64 {
	out := make([]int64, 0, len(list))
	for _, o := range list {
		out = append(out, o.ID)
	}
	return out
}

func TestCollection_ReplaceYAllDevuelvenCopias(t *testing.T) {
	src := pedidos(1, 2, 3)
	c := store.NewCollection[entity.Order]()
	assert.False(t, c.Loaded())

	c.Replace(src)
	src[0].Estado = entity.OrderCancelado

	all := c.All()
	all[1].Estado = entity.OrderEnviado

	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, entity.OrderPendiente, got.Estado)
	got, _ = c.Get(2)
	assert.Equal(t, entity.OrderPendiente, got.Estado)
	assert.True(t, c.Loaded())
	assert.Equal(t, 3, c.Len())
}

func TestCollection_PutSoloFilasExistentes(t *testing.T) {
	c := store.NewCollection[entity.Order]()
	c.Replace(pedidos(1, 2))

	assert.True(t, c.Put(entity.Order{ID: 2, Estado: entity.OrderPagado}))
	assert.False(t, c.Put(entity.Order{ID: 9}))

	got, _ := c.Get(2)
	assert.Equal(t, entity.OrderPagado, got.Estado)
	assert.Equal(t, []int64{1, 2}, keys(c.All()))
}

func TestCollection_RemoveEInsertAtRestauraPosicion(t *testing.T) {
	c := store.NewCollection[entity.Order]()
	c.Replace(pedidos(10, 20, 30, 40))

	snap, _ := c.Get(30)
	pos := c.Remove(30)
	assert.Equal(t, 2, pos)
	assert.Equal(t, []int64{10, 20, 40}, keys(c.All()))

	c.InsertAt(pos, snap)
	assert.Equal(t, []int64{10, 20, 30, 40}, keys(c.All()))

	// duplicado: no hace nada
	c.InsertAt(0, snap)
	assert.Equal(t, []int64{10, 20, 30, 40}, keys(c.All()))

	assert.Equal(t, -1, c.Remove(99))
}

func TestCollection_InsertAtFueraDeRangoAgregaAlFinal(t *testing.T) {
	c := store.NewCollection[entity.Order]()
	c.Replace(pedidos(1, 2))
	c.Remove(2)
	c.Remove(1)

	c.InsertAt(5, entity.Order{ID: 1})
	c.Append(entity.Order{ID: 3})
	assert.Equal(t, []int64{1, 3}, keys(c.All()))
}

func TestCollection_AccesoConcurrente(t *testing.T) {
	c := store.NewCollection[entity.Order]()
	c.Replace(pedidos(1))

	var wg sync.WaitGroup
	for i := int64(2); i < 52; i++ {
		wg.Add(2)
		go func(id int64) {
			defer wg.Done()
			c.Append(entity.Order{ID: id})
		}(i)
		go func() {
			defer wg.Done()
			_ = c.All()
		}()
	}
	wg.Wait()
	assert.Equal(t, 51, c.Len())
}
