// Package alert runs one match alert: fetch the day's matches, build the message,
// notify once.
package alert

import (
	"context"
	"time"

	"github.com/pfrederiksen/match-alert/internal/logger"
	"github.com/pfrederiksen/match-alert/internal/match"
	"github.com/pfrederiksen/match-alert/internal/notifier"
)

// Outcome describes how a run ended
type Outcome string

const (
	OutcomeSent        Outcome = "sent"
	OutcomeNoMatches   Outcome = "no_matches"
	OutcomeFetchFailed Outcome = "fetch_failed"
	OutcomeSendFailed  Outcome = "send_failed"
)

// Fetcher returns the matches scheduled on a YYYY-MM-DD date
type Fetcher interface {
	FetchMatches(ctx context.Context, date string) ([]match.Match, error)
}

// Result records a single run
type Result struct {
	Date    string
	Matches []match.Match
	Message string
	Outcome Outcome
	Err     error
}

// Runner wires a Fetcher to a Notifier
type Runner struct {
	fetcher  Fetcher
	notifier notifier.Notifier
	log      *logger.Logger
	metrics  *logger.Metrics
}

// NewRunner creates a Runner. A nil log discards diagnostics; a nil metrics
// uses a private tracker.
func NewRunner(f Fetcher, n notifier.Notifier, log *logger.Logger, metrics *logger.Metrics) *Runner {
	if log == nil {
		log = logger.Nop()
	}
	if metrics == nil {
		metrics = logger.NewMetrics()
	}
	return &Runner{fetcher: f, notifier: n, log: log, metrics: metrics}
}

// Run fetches once and, if any matches came back, notifies once.
// Fetch and send failures are recorded in the Result rather than returned.
func (r *Runner) Run(ctx context.Context, date string) *Result {
	res := &Result{Date: date}

	start := time.Now()
	matches, err := r.fetcher.FetchMatches(ctx, date)
	r.metrics.RecordTiming("footballdata.fetch", time.Since(start))
	if err != nil {
		r.metrics.IncrCounter("footballdata.errors")
		r.log.Error("Fetching matches failed", logger.Fields{"date": date}, err)
		res.Outcome = OutcomeFetchFailed
		res.Err = err
		return res
	}

	res.Matches = matches
	r.log.Info("Fetched matches", logger.Fields{"date": date, "count": len(matches)})

	if len(matches) == 0 {
		res.Outcome = OutcomeNoMatches
		return res
	}

	res.Message = match.BuildMessage(matches)

	start = time.Now()
	err = r.notifier.Notify(ctx, res.Message)
	r.metrics.RecordTiming("notifier.send", time.Since(start))
	if err != nil {
		r.metrics.IncrCounter("emails.failed")
		r.log.Error("Sending alert failed", logger.Fields{"date": date, "matches": len(matches)}, err)
		res.Outcome = OutcomeSendFailed
		res.Err = err
		return res
	}

	r.metrics.IncrCounter("emails.sent")
	r.log.Info("Alert sent", logger.Fields{"date": date, "matches": len(matches)})
	res.Outcome = OutcomeSent
	return res
}
