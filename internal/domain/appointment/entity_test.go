//go:build unit

package appointment_test

import (
	"strings"
	"testing"
	"time"

	"appointment-scheduler/internal/domain/appointment"
	"appointment-scheduler/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryCreate(t *testing.T) {
	now := time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC)
	startAt := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	factory := appointment.NewFactory(clock.NewStoppedClock(now))
	owner := uuid.New()

	testCases := []struct {
		name    string
		owner   uuid.UUID
		service string
		errIs   error
	}{
		{name: "valid", owner: owner, service: "  Haircut "},
		{name: "blank service", owner: owner, service: "   ", errIs: appointment.ErrEmptyServiceName},
		{name: "long service", owner: owner, service: strings.Repeat("x", 121), errIs: appointment.ErrServiceNameTooLong},
		{name: "missing owner", owner: uuid.Nil, service: "Haircut", errIs: appointment.ErrMissingOwner},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := factory.Create(tc.owner, tc.service, startAt)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, a.ID())
			assert.Equal(t, "Haircut", a.ServiceName().Value())
			assert.True(t, a.IsOwnedBy(owner))
			assert.Equal(t, startAt, a.StartAt())
			assert.Equal(t, now, a.CreatedAt())
			assert.Equal(t, now, a.UpdatedAt())
		})
	}
}

func TestRescheduleAndRename(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	a := appointment.Reconstruct(uuid.New(), uuid.New(), "Haircut", created.Add(48*time.Hour), created, created)

	later := created.Add(time.Hour)
	next := created.Add(72 * time.Hour)
	a.Reschedule(next, later)

	name, err := appointment.NewServiceName("Beard trim")
	require.NoError(t, err)
	a.Rename(name, later)

	assert.Equal(t, next, a.StartAt())
	assert.Equal(t, "Beard trim", a.ServiceName().Value())
	assert.Equal(t, created, a.CreatedAt())
	assert.Equal(t, later, a.UpdatedAt())

	from, to := a.Window(30 * time.Minute)
	assert.Equal(t, next, from)
	assert.Equal(t, next.Add(30*time.Minute), to)
}
