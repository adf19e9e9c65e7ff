package notifier

import (
	"context"
	"fmt"
	"io"
)

// DryRunNotifier prints what would be emailed without connecting to a relay
type DryRunNotifier struct {
	out  io.Writer
	from string
	to   string
}

// NewDryRunNotifier creates a new dry-run notifier writing to out
func NewDryRunNotifier(out io.Writer, from, to string) *DryRunNotifier {
	return &DryRunNotifier{out: out, from: from, to: to}
}

// Notify prints the email that would be sent
func (n *DryRunNotifier) Notify(_ context.Context, body string) error {
	fmt.Fprintln(n.out, "--- Email (dry run) ---")
	fmt.Fprintf(n.out, "From: %s\n", n.from)
	fmt.Fprintf(n.out, "To: %s\n", n.to)
	fmt.Fprintf(n.out, "Subject: %s\n\n", Subject)
	fmt.Fprintln(n.out, body)
	fmt.Fprintln(n.out, "-----------------------")
	return nil
}
