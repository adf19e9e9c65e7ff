package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/pfrederiksen/match-alert/internal/alert"
	"github.com/pfrederiksen/match-alert/internal/match"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

var (
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
)

// OutputResult contains data to be output
type OutputResult struct {
	CheckedAt  time.Time     `json:"checked_at"`
	Date       string        `json:"date"`
	Outcome    alert.Outcome `json:"outcome"`
	MatchCount int           `json:"match_count"`
	Matches    []match.Match `json:"matches"`
	Message    string        `json:"message,omitempty"`
	DryRun     bool          `json:"dry_run,omitempty"`
	Error      string        `json:"error,omitempty"`
}

func newOutputResult(res *alert.Result, dryRun bool, now time.Time) *OutputResult {
	out := &OutputResult{
		CheckedAt:  now.UTC(),
		Date:       res.Date,
		Outcome:    res.Outcome,
		MatchCount: len(res.Matches),
		Matches:    res.Matches,
		Message:    res.Message,
		DryRun:     dryRun,
	}
	if out.Matches == nil {
		out.Matches = []match.Match{}
	}
	if res.Err != nil {
		out.Error = res.Err.Error()
	}
	return out
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs the console lines for the outcome
func writeText(w io.Writer, result *OutputResult) error {
	var err error

	switch result.Outcome {
	case alert.OutcomeFetchFailed:
		if _, err = errorColor.Fprintf(w, "Error fetching matches: %s\n", result.Error); err != nil {
			return err
		}
		// A failed fetch reads like an empty day
		_, err = fmt.Fprintf(w, "No matches found for %s.\n", result.Date)
	case alert.OutcomeNoMatches:
		_, err = fmt.Fprintf(w, "No matches found for %s.\n", result.Date)
	case alert.OutcomeSent:
		if result.DryRun {
			_, err = fmt.Fprintf(w, "Dry run: email not sent (%d matches).\n", result.MatchCount)
		} else {
			_, err = successColor.Fprintln(w, "Email sent successfully.")
		}
	case alert.OutcomeSendFailed:
		_, err = errorColor.Fprintf(w, "Error sending email: %s\n", result.Error)
	default:
		err = fmt.Errorf("unknown outcome: %s", result.Outcome)
	}

	return err
}
