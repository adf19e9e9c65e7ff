// Package notifier provides notification interfaces and implementations for match alerts.
//
// The notifier package delivers the alert body as a single plain-text email through
// an SMTP relay (STARTTLS, PLAIN auth), or prints the would-be email in dry-run mode.
package notifier
