package errs

import (
	"errors"
)

// SilentError marks an error that is only worth a debug log line,
// such as a malformed packet read from a client.
type SilentError struct{ error }

func (e *SilentError) Error() string { return e.error.Error() }
func (e *SilentError) Unwrap() error { return e.error }

// WrapSilent wraps err into a SilentError. A nil err stays nil.
func WrapSilent(err error) error {
	if err == nil {
		return nil
	}
	return &SilentError{err}
}

// IsSilent reports whether err has a SilentError in its chain.
func IsSilent(err error) bool {
	var s *SilentError
	return errors.As(err, &s)
}
