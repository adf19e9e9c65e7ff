// Package match provides the match record and alert message formatting for match-alert.
//
// The match package holds the fields extracted from the football-data.org response
// (kick-off timestamp and team names) and renders them into the plain-text alert
// body, one line per match in the order the API returned them. It also provides the
// calendar-date helpers used to pick and validate the day being checked.
package match
