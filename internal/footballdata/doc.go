// Package footballdata provides the HTTP client for the football-data.org v4 API.
//
// The client fetches the matches scheduled for a single calendar day using the
// /matches endpoint filtered with dateFrom == dateTo, authenticates with the
// X-Auth-Token header, and maps the JSON response into match records. Non-200
// responses are returned as a *StatusError carrying the status code and body text.
package footballdata
