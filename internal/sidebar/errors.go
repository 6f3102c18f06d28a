package sidebar

// ErrorKind classifies pipeline failures. The set is closed: every error
// returned by this package carries exactly one of these kinds, so the
// reporting boundary can match exhaustively.
type ErrorKind int

const (
	// KindConfig marks an invalid configuration (missing or non-directory
	// docs root), detected before any scanning work.
	KindConfig ErrorKind = iota

	// KindIO marks a write-time failure after all in-memory computation
	// succeeded. No partial output is left behind as valid.
	KindIO
)

// Error is the only error type returned by this package.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

func configError(message string, cause error) *Error {
	return &Error{Kind: KindConfig, Message: message, Cause: cause}
}

func ioError(message string, cause error) *Error {
	return &Error{Kind: KindIO, Message: message, Cause: cause}
}
