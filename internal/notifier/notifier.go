package notifier

import "context"

// Subject is the subject line of every alert email
const Subject = "Football Match Alert"

// Notifier defines the interface for delivering an alert message
type Notifier interface {
	// Notify delivers body to the configured recipient
	Notify(ctx context.Context, body string) error
}
