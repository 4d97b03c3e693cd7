package payment_test

import (
	"testing"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/payment"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	t.Run("creates_valid_payment", func(t *testing.T) {
		orderID := kernel.NewUUID()

		p, err := payment.NewPayment(kernel.NewUUID(), orderID, 500, "paid", kernel.Timestamp(100))

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.OrderID().IsEqual(orderID))
		assert.InEpsilon(t, 500.0, p.Amount(), 1e-12)
		assert.Equal(t, "paid", p.Status())
		assert.Nil(t, p.UpdatedAt())
	})

	t.Run("rejects_non_positive_amount", func(t *testing.T) {
		for _, amount := range []float64{0, -10} {
			_, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), amount, "paid", kernel.Timestamp(100))
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("rejects_empty_status", func(t *testing.T) {
		_, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), 500, "", kernel.Timestamp(100))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_missing_order_id", func(t *testing.T) {
		_, err := payment.NewPayment(kernel.NewUUID(), kernel.UUID{}, 500, "paid", kernel.Timestamp(100))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestPayment_Update(t *testing.T) {
	t.Run("replaces_amount_and_status", func(t *testing.T) {
		p, _ := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), 500, "pending", kernel.Timestamp(100))

		err := p.Update(750, "paid", kernel.Timestamp(200))

		require.NoError(t, err)
		assert.InEpsilon(t, 750.0, p.Amount(), 1e-12)
		assert.Equal(t, "paid", p.Status())
		require.NotNil(t, p.UpdatedAt())
		assert.Equal(t, kernel.Timestamp(200), *p.UpdatedAt())
	})

	t.Run("invalid_payload_leaves_payment_unchanged", func(t *testing.T) {
		p, _ := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), 500, "pending", kernel.Timestamp(100))

		err := p.Update(-1, "", kernel.Timestamp(200))

		require.Error(t, err)
		assert.InEpsilon(t, 500.0, p.Amount(), 1e-12)
		assert.Equal(t, "pending", p.Status())
		assert.Nil(t, p.UpdatedAt())
	})
}

func TestPayment_Validate(t *testing.T) {
	var p payment.Payment
	require.ErrorIs(t, p.Validate(), payment.ErrPaymentIsNotConstructed)
}
