// Package expiry classifies food items by how close they are to their expiry
// date. Everything here is pure: a classification is fully determined by the
// two input dates, compared at day granularity.
package expiry

import (
	"fmt"
	"time"

	"github.com/freshkeep/freshkeep-backend/entities"
)

type Kind string

const (
	Expired      Kind = "Expired"
	ExpiresToday Kind = "ExpiresToday"
	ExpiresSoon  Kind = "ExpiresSoon"
	Fresh        Kind = "Fresh"
)

// NotificationWindowDays and DisplayUrgencyDays are deliberately separate
// policy knobs: notifications stop at two days out, while card-level urgent
// styling extends through three. Do not collapse them into one constant.
const (
	NotificationWindowDays = 2
	DisplayUrgencyDays     = 3
)

type Classification struct {
	// UrgencyDays is the signed day count from today to the expiry date;
	// negative means already expired.
	UrgencyDays int
	Kind        Kind
	Label       string
	Severity    entities.AlertType
}

// Notifiable reports whether the item falls inside the alert window:
// expired, or expiring within NotificationWindowDays.
func (c Classification) Notifiable() bool {
	return c.UrgencyDays <= NotificationWindowDays
}

// Urgent reports whether the item gets urgent display styling. The window is
// one day wider than the notification window.
func (c Classification) Urgent() bool {
	return c.UrgencyDays <= DisplayUrgencyDays
}

// Classify buckets an expiry date relative to today. Both inputs are
// truncated to midnight in their own location first, so time of day never
// affects the result.
func Classify(today, expiryDate time.Time) Classification {
	days := daysBetween(today, expiryDate)

	switch {
	case days < 0:
		return Classification{
			UrgencyDays: days,
			Kind:        Expired,
			Label:       "Expired",
			Severity:    entities.AlertDanger,
		}
	case days == 0:
		return Classification{
			UrgencyDays: days,
			Kind:        ExpiresToday,
			Label:       "Expires Today",
			Severity:    entities.AlertWarning,
		}
	case days <= DisplayUrgencyDays:
		return Classification{
			UrgencyDays: days,
			Kind:        ExpiresSoon,
			Label:       fmt.Sprintf("Expires in %d days", days),
			Severity:    entities.AlertWarning,
		}
	default:
		return Classification{
			UrgencyDays: days,
			Kind:        Fresh,
			Label:       fmt.Sprintf("Expires in %d days", days),
			Severity:    entities.AlertInfo,
		}
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween is the ceiling of (expiry - today) in days after both are
// normalized to midnight. With whole-day inputs the ceiling matters only
// across DST transitions, where a naive division would round a 23-hour day
// down to zero.
func daysBetween(today, expiry time.Time) int {
	diff := startOfDay(expiry).Sub(startOfDay(today))
	days := diff / (24 * time.Hour)
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return int(days)
}
