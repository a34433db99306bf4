package domain

import "errors"

var (
	MessageSuccessGetAlerts   = "alerts retrieved successfully"
	MessageSuccessMarkRead    = "alert marked as read"
	MessageSuccessMarkAllRead = "all alerts marked as read"

	MessageFailedGetAlerts = "failed to retrieve alerts"
	MessageFailedMarkRead  = "failed to mark alert as read"

	ErrAlertNotFound = errors.New("alert not found")
)
