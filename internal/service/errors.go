package service

// InvalidQueryError marks a malformed analysis query (missing or implausible
// parameters). Recoverable and user-facing.
type InvalidQueryError struct {
	Msg string
}

func (e *InvalidQueryError) Error() string {
	return e.Msg
}
