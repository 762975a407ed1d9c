//go:build unit

package gear_test

import (
	"testing"

	"club-portal/internal/domain/gear"
	"club-portal/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const merchantEmail = "treasurer@example.edu"

func TestValidateNotification(t *testing.T) {
	t.Run("well-formed completed payment decodes its items", func(t *testing.T) {
		n := builder.NewNotificationBuilder().Build()

		items, err := gear.ValidateNotification(n, merchantEmail)
		require.NoError(t, err)

		require.Len(t, items, 1)
		assert.Equal(t, gear.PayloadItem{Name: "Crew Jacket", Quantity: 1, Size: "M"}, items[0])
	})

	t.Run("non-completed status fails first", func(t *testing.T) {
		// Everything else is broken too; the status check must win.
		n := builder.NewNotificationBuilder().With(func(b *builder.NotificationBuilder) {
			b.Status = "Pending"
			b.ReceiverEmail = "attacker@example.com"
			b.Custom = "garbage"
		}).Build()

		_, err := gear.ValidateNotification(n, merchantEmail)
		assert.ErrorIs(t, err, gear.ErrPaymentNotCompleted)
	})

	t.Run("wrong receiver fails before the payload is touched", func(t *testing.T) {
		n := builder.NewNotificationBuilder().With(func(b *builder.NotificationBuilder) {
			b.ReceiverEmail = "attacker@example.com"
			b.Custom = "garbage"
		}).Build()

		_, err := gear.ValidateNotification(n, merchantEmail)
		assert.ErrorIs(t, err, gear.ErrUntrustedPayee)
	})

	t.Run("undecodable payload is rejected last", func(t *testing.T) {
		n := builder.NewNotificationBuilder().With(func(b *builder.NotificationBuilder) {
			b.Custom = "Crew Jacket|one|M|"
		}).Build()

		_, err := gear.ValidateNotification(n, merchantEmail)
		assert.ErrorIs(t, err, gear.ErrMalformedPayload)
	})
}

func TestVerifyAmount(t *testing.T) {
	assert.NoError(t, gear.VerifyAmount(4500, 4500))
	assert.ErrorIs(t, gear.VerifyAmount(4500, 4499), gear.ErrAmountMismatch)
	assert.ErrorIs(t, gear.VerifyAmount(4500, 9000), gear.ErrAmountMismatch)
}
