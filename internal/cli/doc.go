// Package cli implements the command-line interface for match-alert.
//
// The cli package provides the Cobra root command. It resolves configuration from
// flags, the environment and an optional dotenv file, runs one alert (fetch the
// day's matches from football-data.org, email the warning when any are scheduled)
// and reports the outcome as text or JSON.
package cli
