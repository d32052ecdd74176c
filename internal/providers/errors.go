package providers

import (
	"errors"
	"fmt"

	"gamewatch/internal/domain"
)

// FetchError captures a failed upstream schedule fetch for one league.
type FetchError struct {
	League     domain.League
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s schedule fetch failed (status=%d): %v", e.League, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s schedule fetch failed: %v", e.League, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fErr *FetchError
	if errors.As(err, &fErr) {
		return fErr, true
	}
	return nil, false
}
