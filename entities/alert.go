package entities

import "time"

type AlertType string

const (
	AlertDanger  AlertType = "danger"
	AlertWarning AlertType = "warning"
	AlertSuccess AlertType = "success"
	AlertInfo    AlertType = "info"
)

// Alert is a transient expiry notice derived from inventory state. Alerts are
// regenerated from scratch on every read; only the set of acknowledged alert
// IDs is ever persisted. The ID is deterministic per (item, condition) so an
// alert keeps its identity across regenerations.
type Alert struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	Type    AlertType `json:"type"`
	Date    time.Time `json:"date"`
}
