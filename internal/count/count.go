package count

import (
	"strconv"

	"fortio.org/safecast"
)

// InvalidCountError reports a token that failed positive-integer validation.
// Error returns the offending token verbatim so callers can prepend their own
// context (e.g. "illegal line count -- 0x1f").
type InvalidCountError struct {
	Token string
}

func (e *InvalidCountError) Error() string {
	return e.Token
}

// ParsePositive converts a textual token into a strictly-positive int.
// Zero, negative and non-numeric tokens all fail the same way: with an
// *InvalidCountError carrying the original token.
func ParsePositive(token string) (int, error) {
	n, err := strconv.ParseUint(token, 10, 64)
	if err != nil || n == 0 {
		return 0, &InvalidCountError{Token: token}
	}
	v, err := safecast.Conv[int](n)
	if err != nil {
		return 0, &InvalidCountError{Token: token}
	}
	return v, nil
}
