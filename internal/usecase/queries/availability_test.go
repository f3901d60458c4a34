//go:build unit

package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"appointment-scheduler/internal/domain/calendar"
	"appointment-scheduler/internal/infra/metrics"
	"appointment-scheduler/internal/pkg/errs"
	"appointment-scheduler/internal/usecase/queries"
	"appointment-scheduler/internal/usecase/shared"
	"appointment-scheduler/tests/common/builder"
	sharedmock "appointment-scheduler/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newAvailability(t *testing.T, cal *calendar.BusinessCalendar, m *metrics.BookingMetrics) (queries.AvailabilityQueries, *sharedmock.MockAppointmentReads) {
	t.Helper()
	ctrl := gomock.NewController(t)
	reads := sharedmock.NewMockAppointmentReads(ctrl)
	return queries.NewAvailabilityQueries(cal, queries.NewReconciler(cal, reads), m, discard), reads
}

func booked(hour, minute int) shared.BookedStart {
	return shared.BookedStart{ID: uuid.New(), StartAt: time.Date(2024, 3, 15, hour, minute, 0, 0, time.UTC)}
}

func TestAvailableSlots(t *testing.T) {
	friday := builder.MustDate(t, "2024-03-15")
	dayStart := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	testCases := []struct {
		name   string
		date   calendar.Date
		starts []shared.BookedStart
		count  int
	}{
		{
			name:  "free working day lists every slot",
			date:  friday,
			count: 20,
		},
		{
			name:   "booked slots are removed",
			date:   friday,
			starts: []shared.BookedStart{booked(10, 0), booked(14, 30)},
			count:  18,
		},
		{
			name:   "off-grid legacy row blocks the slot it started in",
			date:   friday,
			starts: []shared.BookedStart{booked(10, 15)},
			count:  19,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, reads := newAvailability(t, builder.NewCalendarBuilder().Build(t), nil)
			reads.EXPECT().StartsBetween(gomock.Any(), timeEq(dayStart), timeEq(dayEnd)).Return(tc.starts, nil).Times(1)

			slots, err := q.AvailableSlots(context.Background(), tc.date)

			require.NoError(t, err)
			assert.Len(t, slots, tc.count)
			for _, b := range tc.starts {
				floored := calendar.Slot(b.StartAt.Format("15:04"))
				if b.StartAt.Minute()%30 != 0 {
					floored = calendar.Slot(b.StartAt.Truncate(30 * time.Minute).Format("15:04"))
				}
				assert.NotContains(t, slots, floored)
			}
			assert.NotContains(t, slots, calendar.Slot("12:00"))
			assert.NotContains(t, slots, calendar.Slot("12:30"))
		})
	}
}

func TestAvailableSlots_OrderAndIdempotence(t *testing.T) {
	q, reads := newAvailability(t, builder.NewCalendarBuilder().Build(t), nil)
	reads.EXPECT().StartsBetween(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]shared.BookedStart{booked(8, 0)}, nil).Times(2)
	friday := builder.MustDate(t, "2024-03-15")

	first, err := q.AvailableSlots(context.Background(), friday)
	require.NoError(t, err)
	second, err := q.AvailableSlots(context.Background(), friday)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, calendar.Slot("08:30"), first[0])
	assert.Equal(t, calendar.Slot("18:30"), first[len(first)-1])
}

func TestAvailableSlots_WeekendSkipsStorage(t *testing.T) {
	q, reads := newAvailability(t, builder.NewCalendarBuilder().Build(t), nil)
	reads.EXPECT().StartsBetween(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for _, d := range []string{"2024-03-16", "2024-03-17"} {
		slots, err := q.AvailableSlots(context.Background(), builder.MustDate(t, d))
		require.NoError(t, err)
		assert.NotNil(t, slots)
		assert.Empty(t, slots)
	}
}

func TestAvailableSlots_StoreFailure(t *testing.T) {
	q, reads := newAvailability(t, builder.NewCalendarBuilder().Build(t), nil)
	reads.EXPECT().StartsBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := q.AvailableSlots(context.Background(), builder.MustDate(t, "2024-03-15"))

	assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
}

func TestAvailableSlots_BusinessTimeZone(t *testing.T) {
	cal := builder.NewCalendarBuilder().With(func(o *calendar.Options) { o.TimeZone = "America/Sao_Paulo" }).Build(t)
	q, reads := newAvailability(t, cal, nil)

	// Local midnight in Sao Paulo is 03:00 UTC; 13:00 UTC is 10:00 local.
	from := time.Date(2024, 3, 15, 3, 0, 0, 0, time.UTC)
	reads.EXPECT().StartsBetween(gomock.Any(), timeEq(from), timeEq(from.Add(24*time.Hour))).
		Return([]shared.BookedStart{booked(13, 0)}, nil)

	slots, err := q.AvailableSlots(context.Background(), builder.MustDate(t, "2024-03-15"))

	require.NoError(t, err)
	assert.Len(t, slots, 19)
	assert.NotContains(t, slots, calendar.Slot("10:00"))
	assert.Contains(t, slots, calendar.Slot("13:00"))
}

func TestValidateSlot(t *testing.T) {
	testCases := []struct {
		name       string
		date       string
		time       string
		starts     []shared.BookedStart
		hitsStore  bool
		wantReason errs.UnavailableReason
	}{
		{name: "free slot", date: "2024-03-15", time: "10:00", hitsStore: true},
		{name: "closing time is inclusive", date: "2024-03-15", time: "19:00", hitsStore: true},
		{name: "booked slot", date: "2024-03-15", time: "10:00", starts: []shared.BookedStart{booked(10, 0)}, hitsStore: true, wantReason: errs.ReasonAlreadyBooked},
		{name: "weekend wins over hours", date: "2024-03-16", time: "07:00", wantReason: errs.ReasonNonWorkingDay},
		{name: "before opening", date: "2024-03-15", time: "07:59", wantReason: errs.ReasonOutsideHours},
		{name: "past closing", date: "2024-03-15", time: "19:01", wantReason: errs.ReasonOutsideHours},
		{name: "break wins over occupancy", date: "2024-03-15", time: "12:00", wantReason: errs.ReasonBreakPeriod},
		{name: "break end is bookable", date: "2024-03-15", time: "13:00", hitsStore: true},
		{name: "off-grid time is checked as given", date: "2024-03-15", time: "10:15", starts: []shared.BookedStart{booked(10, 0)}, hitsStore: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, reads := newAvailability(t, builder.NewCalendarBuilder().Build(t), nil)
			times := 0
			if tc.hitsStore {
				times = 1
			}
			reads.EXPECT().StartsBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(tc.starts, nil).Times(times)

			err := q.ValidateSlot(context.Background(), builder.MustDate(t, tc.date), builder.MustTime(t, tc.time))

			if tc.wantReason == "" {
				assert.NoError(t, err)
				return
			}
			ue, ok := errs.AsUnavailable(err)
			require.True(t, ok, "got %v", err)
			assert.Equal(t, tc.wantReason, ue.Reason)
		})
	}
}

func TestValidateSlot_ExclusiveClose(t *testing.T) {
	cal := builder.NewCalendarBuilder().With(func(o *calendar.Options) { o.CloseInclusive = false }).Build(t)
	q, _ := newAvailability(t, cal, nil)

	err := q.ValidateSlot(context.Background(), builder.MustDate(t, "2024-03-15"), builder.MustTime(t, "19:00"))

	ue, ok := errs.AsUnavailable(err)
	require.True(t, ok)
	assert.Equal(t, errs.ReasonOutsideHours, ue.Reason)
}

func TestValidateReschedule_IgnoresOwnBooking(t *testing.T) {
	q, reads := newAvailability(t, builder.NewCalendarBuilder().Build(t), nil)
	own := booked(10, 0)
	reads.EXPECT().StartsBetween(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]shared.BookedStart{own}, nil).Times(2)
	friday := builder.MustDate(t, "2024-03-15")

	assert.NoError(t, q.ValidateReschedule(context.Background(), friday, builder.MustTime(t, "10:00"), own.ID))

	err := q.ValidateReschedule(context.Background(), friday, builder.MustTime(t, "10:00"), uuid.New())
	assert.ErrorIs(t, err, errs.ErrSlotUnavailable)
}

func TestValidateSlot_CountsRejections(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewBookingMetrics(reg, "test")
	q, _ := newAvailability(t, builder.NewCalendarBuilder().Build(t), m)

	_ = q.ValidateSlot(context.Background(), builder.MustDate(t, "2024-03-16"), builder.MustTime(t, "10:00"))

	count, err := testutil.GatherAndCount(reg, "test_appointments_rejections_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCalendarView(t *testing.T) {
	cal := builder.NewCalendarBuilder().With(func(o *calendar.Options) { o.Open = "09:00" }).Build(t)
	q, _ := newAvailability(t, cal, nil)

	view := q.Calendar()

	assert.Equal(t, "09:00", view.Open)
	assert.Equal(t, "19:00", view.Close)
	assert.Equal(t, 30, view.IntervalMinutes)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, view.WorkingDays)
	assert.Equal(t, []queries.BreakView{{Name: "Lunch", Start: "12:00", End: "13:00"}}, view.Breaks)
	assert.Equal(t, "UTC", view.TimeZone)
	assert.True(t, view.CloseInclusive)
}

type timeMatcher struct{ want time.Time }

func timeEq(want time.Time) gomock.Matcher { return timeMatcher{want: want} }

func (m timeMatcher) Matches(x any) bool {
	got, ok := x.(time.Time)
	return ok && got.Equal(m.want)
}

func (m timeMatcher) String() string { return "is the instant " + m.want.String() }
