package alert

import (
	"fmt"
	"time"

	"github.com/freshkeep/freshkeep-backend/entities"
	"github.com/freshkeep/freshkeep-backend/pkg/expiry"
)

// Alert identity is derived from the item and exactly two condition kinds.
// Keeping the "soon" band a single identity means an item sliding from two
// days out to one does not mint a new alert, so its read status holds while
// the message's day count changes underneath.
const (
	kindExpired = "expired"
	kindSoon    = "soon"
)

func expiredAlertID(itemID string) string { return fmt.Sprintf("alert-%s-%s", itemID, kindExpired) }
func soonAlertID(itemID string) string    { return fmt.Sprintf("alert-%s-%s", itemID, kindSoon) }

// IDsForItem returns every alert identity an item can produce. Used to prune
// the read set when an item is removed for good.
func IDsForItem(itemID string) []string {
	return []string{expiredAlertID(itemID), soonAlertID(itemID)}
}

// Generate derives the full alert set from the inventory, one pass, in input
// order. Items expiring more than two days out produce nothing. The result is
// never persisted; callers filter it against the read-ID set.
func Generate(items []entities.FoodItem, today time.Time) []entities.Alert {
	alerts := make([]entities.Alert, 0)
	now := time.Now()

	for _, item := range items {
		c := expiry.Classify(today, item.ExpiryDate)
		if !c.Notifiable() {
			continue
		}

		var a entities.Alert
		if c.UrgencyDays < 0 {
			a = entities.Alert{
				ID:      expiredAlertID(item.ID.String()),
				Message: fmt.Sprintf("%s has expired! Please dispose of it.", item.Name),
				Type:    entities.AlertDanger,
				Date:    now,
			}
		} else {
			message := fmt.Sprintf("%s expires in %d days.", item.Name, c.UrgencyDays)
			if c.UrgencyDays == 0 {
				message = fmt.Sprintf("%s expires today.", item.Name)
			}
			a = entities.Alert{
				ID:      soonAlertID(item.ID.String()),
				Message: message,
				Type:    entities.AlertWarning,
				Date:    now,
			}
		}
		alerts = append(alerts, a)
	}

	return alerts
}

// FilterUnread is a pure set difference of alerts by identifier.
func FilterUnread(all []entities.Alert, readIDs map[string]struct{}) []entities.Alert {
	unread := make([]entities.Alert, 0, len(all))
	for _, a := range all {
		if _, read := readIDs[a.ID]; !read {
			unread = append(unread, a)
		}
	}
	return unread
}
