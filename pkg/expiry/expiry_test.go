package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/freshkeep/freshkeep-backend/entities"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassify(t *testing.T) {
	today := date(2026, time.March, 10)

	tests := []struct {
		name     string
		expiry   time.Time
		days     int
		kind     Kind
		label    string
		severity entities.AlertType
	}{
		{
			name:     "expired yesterday",
			expiry:   date(2026, time.March, 9),
			days:     -1,
			kind:     Expired,
			label:    "Expired",
			severity: entities.AlertDanger,
		},
		{
			name:     "expired a week ago",
			expiry:   date(2026, time.March, 3),
			days:     -7,
			kind:     Expired,
			label:    "Expired",
			severity: entities.AlertDanger,
		},
		{
			name:     "expires today",
			expiry:   date(2026, time.March, 10),
			days:     0,
			kind:     ExpiresToday,
			label:    "Expires Today",
			severity: entities.AlertWarning,
		},
		{
			name:     "expires tomorrow",
			expiry:   date(2026, time.March, 11),
			days:     1,
			kind:     ExpiresSoon,
			label:    "Expires in 1 days",
			severity: entities.AlertWarning,
		},
		{
			name:     "expires in three days still soon",
			expiry:   date(2026, time.March, 13),
			days:     3,
			kind:     ExpiresSoon,
			label:    "Expires in 3 days",
			severity: entities.AlertWarning,
		},
		{
			name:     "four days out is fresh",
			expiry:   date(2026, time.March, 14),
			days:     4,
			kind:     Fresh,
			label:    "Expires in 4 days",
			severity: entities.AlertInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(today, tt.expiry)
			assert.Equal(t, tt.days, c.UrgencyDays)
			assert.Equal(t, tt.kind, c.Kind)
			assert.Equal(t, tt.label, c.Label)
			assert.Equal(t, tt.severity, c.Severity)
		})
	}
}

func TestClassifyIgnoresTimeOfDay(t *testing.T) {
	// Late today vs early on the expiry day must still be a whole day apart.
	today := time.Date(2026, time.March, 10, 23, 55, 0, 0, time.UTC)
	expiry := time.Date(2026, time.March, 11, 0, 5, 0, 0, time.UTC)

	c := Classify(today, expiry)
	assert.Equal(t, 1, c.UrgencyDays)
	assert.Equal(t, ExpiresSoon, c.Kind)
}

func TestNotifiableAndUrgentWindowsDiffer(t *testing.T) {
	today := date(2026, time.March, 10)

	tests := []struct {
		name       string
		offsetDays int
		notifiable bool
		urgent     bool
	}{
		{"expired", -1, true, true},
		{"today", 0, true, true},
		{"one day out", 1, true, true},
		{"two days out", 2, true, true},
		{"three days out urgent but silent", 3, false, true},
		{"four days out", 4, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(today, today.AddDate(0, 0, tt.offsetDays))
			assert.Equal(t, tt.notifiable, c.Notifiable())
			assert.Equal(t, tt.urgent, c.Urgent())
		})
	}
}

func TestDaysBetweenAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	// March 8 2026 is the spring-forward date; that civil day is 23 hours
	// long, so a naive division would round the difference down to zero.
	today := time.Date(2026, time.March, 8, 12, 0, 0, 0, loc)
	expiry := time.Date(2026, time.March, 9, 12, 0, 0, 0, loc)

	c := Classify(today, expiry)
	assert.Equal(t, 1, c.UrgencyDays)
}
