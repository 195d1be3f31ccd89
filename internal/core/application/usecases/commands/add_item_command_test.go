package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafedelivery/internal/core/application/usecases/commands"
	"cafedelivery/internal/core/domain/model/kernel"
)

func mustMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoneyFromCents(cents)
	require.NoError(t, err)
	return money
}

func TestNewAddItemCommand(t *testing.T) {
	productID := kernel.NewUUID()

	cmd, err := commands.NewAddItemCommand("user-1", productID, "Latte", mustMoney(t, 450), 2, "medium", "img/latte.png")

	require.NoError(t, err)
	assert.Equal(t, "user-1", cmd.OwnerID())
	assert.True(t, cmd.ProductID().IsEqual(productID))
	assert.Equal(t, "Latte", cmd.Name())
	assert.Equal(t, int64(450), cmd.UnitPrice().Cents())
	assert.Equal(t, 2, cmd.Quantity())
	assert.Equal(t, "medium", cmd.SizeVariant())
	assert.Equal(t, "img/latte.png", cmd.ImageRef())
	assert.NoError(t, cmd.Validate())
}

func TestNewAddItemCommandValidation(t *testing.T) {
	price := mustMoney(t, 450)

	tests := map[string]struct {
		ownerID   string
		productID kernel.UUID
		name      string
		quantity  int
		wantErr   error
	}{
		"empty owner":       {ownerID: "", productID: kernel.NewUUID(), name: "Latte", quantity: 1, wantErr: commands.ErrOwnerIDIsRequired},
		"invalid product":   {ownerID: "user-1", productID: kernel.UUID{}, name: "Latte", quantity: 1},
		"empty name":        {ownerID: "user-1", productID: kernel.NewUUID(), name: "", quantity: 1, wantErr: commands.ErrProductNameIsRequired},
		"zero quantity":     {ownerID: "user-1", productID: kernel.NewUUID(), name: "Latte", quantity: 0, wantErr: commands.ErrQuantityIsInvalid},
		"negative quantity": {ownerID: "user-1", productID: kernel.NewUUID(), name: "Latte", quantity: -3, wantErr: commands.ErrQuantityIsInvalid},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cmd, err := commands.NewAddItemCommand(tc.ownerID, tc.productID, tc.name, price, tc.quantity, "", "")

			require.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
			assert.Error(t, cmd.Validate())
		})
	}
}

func TestAddItemCommandZeroValueIsInvalid(t *testing.T) {
	var cmd commands.AddItemCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrAddItemCommandIsNotConstructed)
}
