package footballdata

import (
	"errors"
	"fmt"
)

var (
	ErrSourceUnavailable = errors.New("football-data unavailable")
	ErrUnexpectedStatus  = errors.New("unexpected status")
)

// StatusError is returned when the API answers with a non-200 status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d - %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}
