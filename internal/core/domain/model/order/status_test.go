package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafedelivery/internal/pkg/errs"
)

func allStatuses() []Status {
	return []Status{Pending, Confirmed, InPreparation, AwaitingCourier, EnRoute, Delivered, Cancelled}
}

func TestStatusValidate(t *testing.T) {
	for _, status := range allStatuses() {
		assert.NoError(t, status.Validate(), status.String())
	}

	assert.ErrorIs(t, Unknown.Validate(), errs.ErrValueIsInvalid)
	assert.ErrorIs(t, Status(99).Validate(), errs.ErrValueIsInvalid)
}

func TestStatusString(t *testing.T) {
	tests := map[Status]string{
		Unknown:         "Unknown",
		Pending:         "Pending",
		Confirmed:       "Confirmed",
		InPreparation:   "InPreparation",
		AwaitingCourier: "AwaitingCourier",
		EnRoute:         "EnRoute",
		Delivered:       "Delivered",
		Cancelled:       "Cancelled",
		Status(99):      "Unknown",
	}

	for status, want := range tests {
		assert.Equal(t, want, status.String())
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, Delivered.IsTerminal())
	assert.True(t, Cancelled.IsTerminal())

	for _, status := range []Status{Pending, Confirmed, InPreparation, AwaitingCourier, EnRoute} {
		assert.False(t, status.IsTerminal(), status.String())
	}
}

func TestStatusForwardTransitions(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		role Role
		call func(Status, Role) (Status, error)
	}{
		{"confirm", Pending, Confirmed, RoleAdmin, Status.Confirm},
		{"start preparation", Confirmed, InPreparation, RoleAdmin, Status.StartPreparation},
		{"ready for courier", InPreparation, AwaitingCourier, RoleAdmin, Status.ReadyForCourier},
		{"accept delivery", AwaitingCourier, EnRoute, RoleCourier, Status.AcceptDelivery},
		{"complete delivery", EnRoute, Delivered, RoleCourier, Status.CompleteDelivery},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.call(tc.from, tc.role)

			require.NoError(t, err)
			assert.Equal(t, tc.to, got)
		})
	}
}

// Every forward transition must fail from every status except its single
// legal source, regardless of role.
func TestStatusForwardTransitionsRejectWrongSource(t *testing.T) {
	transitions := []struct {
		name string
		from Status
		role Role
		call func(Status, Role) (Status, error)
	}{
		{"confirm", Pending, RoleAdmin, Status.Confirm},
		{"start preparation", Confirmed, RoleAdmin, Status.StartPreparation},
		{"ready for courier", InPreparation, RoleAdmin, Status.ReadyForCourier},
		{"accept delivery", AwaitingCourier, RoleCourier, Status.AcceptDelivery},
		{"complete delivery", EnRoute, RoleCourier, Status.CompleteDelivery},
	}

	for _, tr := range transitions {
		for _, from := range append(allStatuses(), Unknown) {
			if from == tr.from {
				continue
			}

			t.Run(tr.name+" from "+from.String(), func(t *testing.T) {
				got, err := tr.call(from, tr.role)

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidTransition)
				assert.Equal(t, Status(0), got)
			})
		}
	}
}

func TestStatusTransitionsRejectWrongRole(t *testing.T) {
	tests := []struct {
		name  string
		from  Status
		roles []Role
		call  func(Status, Role) (Status, error)
	}{
		{"confirm", Pending, []Role{RoleCustomer, RoleCourier, RoleUnknown}, Status.Confirm},
		{"start preparation", Confirmed, []Role{RoleCustomer, RoleCourier, RoleUnknown}, Status.StartPreparation},
		{"ready for courier", InPreparation, []Role{RoleCustomer, RoleCourier, RoleUnknown}, Status.ReadyForCourier},
		{"accept delivery", AwaitingCourier, []Role{RoleCustomer, RoleAdmin, RoleUnknown}, Status.AcceptDelivery},
		{"complete delivery", EnRoute, []Role{RoleCustomer, RoleAdmin, RoleUnknown}, Status.CompleteDelivery},
	}

	for _, tc := range tests {
		for _, role := range tc.roles {
			t.Run(tc.name+" as "+role.String(), func(t *testing.T) {
				_, err := tc.call(tc.from, role)

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidTransition)
			})
		}
	}
}

func TestStatusCancel(t *testing.T) {
	t.Run("customer may cancel pending", func(t *testing.T) {
		got, err := Pending.Cancel(RoleCustomer)

		require.NoError(t, err)
		assert.Equal(t, Cancelled, got)
	})

	t.Run("admin may cancel any non-terminal", func(t *testing.T) {
		for _, from := range []Status{Pending, Confirmed, InPreparation, AwaitingCourier, EnRoute} {
			got, err := from.Cancel(RoleAdmin)

			require.NoError(t, err, from.String())
			assert.Equal(t, Cancelled, got)
		}
	})

	t.Run("customer may not cancel after confirmation", func(t *testing.T) {
		for _, from := range []Status{Confirmed, InPreparation, AwaitingCourier, EnRoute} {
			_, err := from.Cancel(RoleCustomer)

			require.Error(t, err, from.String())
			assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		}
	})

	t.Run("courier may not cancel", func(t *testing.T) {
		for _, from := range []Status{Pending, Confirmed, EnRoute} {
			_, err := from.Cancel(RoleCourier)

			require.Error(t, err, from.String())
			assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		}
	})
}

// Terminal statuses accept no transition of any kind for any role.
func TestStatusTerminalIsClosed(t *testing.T) {
	roles := []Role{RoleCustomer, RoleAdmin, RoleCourier}
	targets := []Status{Confirmed, InPreparation, AwaitingCourier, EnRoute, Delivered, Cancelled}

	for _, from := range []Status{Delivered, Cancelled} {
		for _, target := range targets {
			for _, role := range roles {
				_, err := from.TransitionTo(target, role)

				require.Error(t, err, "%s -> %s as %s", from, target, role)
				assert.ErrorIs(t, err, errs.ErrInvalidTransition)
			}
		}
	}
}

func TestStatusTransitionTo(t *testing.T) {
	t.Run("dispatches to transition methods", func(t *testing.T) {
		got, err := Pending.TransitionTo(Confirmed, RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, Confirmed, got)

		got, err = EnRoute.TransitionTo(Cancelled, RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, Cancelled, got)
	})

	t.Run("rejects unreachable targets", func(t *testing.T) {
		for _, target := range []Status{Pending, Unknown, Status(99)} {
			_, err := Confirmed.TransitionTo(target, RoleAdmin)

			require.Error(t, err, target.String())
			assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		}
	})

	t.Run("rejects skipping statuses", func(t *testing.T) {
		_, err := Pending.TransitionTo(InPreparation, RoleAdmin)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)

		_, err = Pending.TransitionTo(Delivered, RoleCourier)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestStatusValidateCanHaveCourier(t *testing.T) {
	t.Run("en route and delivered require a courier", func(t *testing.T) {
		for _, status := range []Status{EnRoute, Delivered} {
			assert.NoError(t, status.ValidateCanHaveCourier(true), status.String())
			assert.ErrorIs(t, status.ValidateCanHaveCourier(false), errs.ErrValueIsInvalid, status.String())
		}
	})

	t.Run("pre-route statuses forbid a courier", func(t *testing.T) {
		for _, status := range []Status{Pending, Confirmed, InPreparation, AwaitingCourier} {
			assert.NoError(t, status.ValidateCanHaveCourier(false), status.String())
			assert.ErrorIs(t, status.ValidateCanHaveCourier(true), errs.ErrValueIsInvalid, status.String())
		}
	})

	t.Run("cancelled allows either", func(t *testing.T) {
		assert.NoError(t, Cancelled.ValidateCanHaveCourier(true))
		assert.NoError(t, Cancelled.ValidateCanHaveCourier(false))
	})
}
