package cart_test

import (
	"testing"

	"cafedelivery/internal/core/domain/model/cart"
	"cafedelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromCents(cents)
	require.NoError(t, err)
	return m
}

func TestNewItem(t *testing.T) {
	t.Run("creates item with generated line id", func(t *testing.T) {
		productID := kernel.NewUUID()

		item, err := cart.NewItem(productID, "Latte", mustMoney(t, 1000), 2, "M", "img/latte.png")

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		require.NoError(t, item.ID().Validate())
		assert.True(t, productID.IsEqual(item.ProductID()))
		assert.Equal(t, "Latte", item.Name())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, "M", item.SizeVariant())
		assert.Equal(t, "img/latte.png", item.ImageRef())
	})

	t.Run("each item gets its own line id", func(t *testing.T) {
		productID := kernel.NewUUID()
		a, _ := cart.NewItem(productID, "Latte", mustMoney(t, 1000), 1, "M", "")
		b, _ := cart.NewItem(productID, "Latte", mustMoney(t, 1000), 1, "M", "")

		assert.False(t, a.ID().IsEqual(b.ID()))
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := cart.NewItem(kernel.NewUUID(), "", mustMoney(t, 1000), 1, "", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, cart.ErrItemNameIsRequired)
	})

	t.Run("rejects quantity below one", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := cart.NewItem(kernel.NewUUID(), "Latte", mustMoney(t, 1000), quantity, "", "")

			require.Error(t, err)
			assert.ErrorIs(t, err, cart.ErrItemQuantityIsInvalid)
		}
	})

	t.Run("rejects invalid product id", func(t *testing.T) {
		var productID kernel.UUID

		_, err := cart.NewItem(productID, "Latte", mustMoney(t, 1000), 1, "", "")

		require.Error(t, err)
	})
}

func TestRestoreItem(t *testing.T) {
	t.Run("accepts non-positive quantity", func(t *testing.T) {
		item, err := cart.RestoreItem(kernel.NewUUID(), kernel.NewUUID(), "Latte", mustMoney(t, 1000), 0, "M", "")

		require.NoError(t, err)
		assert.Equal(t, 0, item.Quantity())
		assert.Equal(t, int64(0), item.LineTotal().Cents())
	})

	t.Run("rejects invalid line id", func(t *testing.T) {
		var lineID kernel.UUID

		_, err := cart.RestoreItem(lineID, kernel.NewUUID(), "Latte", mustMoney(t, 1000), 1, "", "")

		require.Error(t, err)
	})
}

func TestItem_MergesWith(t *testing.T) {
	productID := kernel.NewUUID()

	t.Run("same product and size merge", func(t *testing.T) {
		a, _ := cart.NewItem(productID, "Latte", mustMoney(t, 1000), 1, "M", "")
		b, _ := cart.NewItem(productID, "Latte", mustMoney(t, 1000), 3, "M", "")

		assert.True(t, a.MergesWith(b))
	})

	t.Run("different size does not merge", func(t *testing.T) {
		a, _ := cart.NewItem(productID, "Latte", mustMoney(t, 1000), 1, "M", "")
		b, _ := cart.NewItem(productID, "Latte", mustMoney(t, 1200), 1, "L", "")

		assert.False(t, a.MergesWith(b))
	})

	t.Run("different product does not merge", func(t *testing.T) {
		a, _ := cart.NewItem(productID, "Latte", mustMoney(t, 1000), 1, "M", "")
		b, _ := cart.NewItem(kernel.NewUUID(), "Mocha", mustMoney(t, 1000), 1, "M", "")

		assert.False(t, a.MergesWith(b))
	})

	t.Run("nil does not merge", func(t *testing.T) {
		a, _ := cart.NewItem(productID, "Latte", mustMoney(t, 1000), 1, "M", "")

		assert.False(t, a.MergesWith(nil))
	})
}

func TestItem_LineTotal(t *testing.T) {
	item, _ := cart.NewItem(kernel.NewUUID(), "Latte", mustMoney(t, 1050), 3, "", "")

	assert.Equal(t, int64(3150), item.LineTotal().Cents())
}

func TestItem_Snapshot(t *testing.T) {
	t.Run("snapshot is detached from the line", func(t *testing.T) {
		item, _ := cart.NewItem(kernel.NewUUID(), "Latte", mustMoney(t, 1000), 2, "M", "")

		snapshot := item.Snapshot()

		assert.Equal(t, item.Quantity(), snapshot.Quantity())
		assert.True(t, item.ID().IsEqual(snapshot.ID()))
	})
}
