package daumdic

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyQuery is returned by Search when the query string is empty.
	// No request is made in that case.
	ErrEmptyQuery = errors.New("empty query")

	// ErrMarkup is returned when the fetched page contains none of the
	// markup the parser knows about, which usually means the site changed
	// its layout or the response was not a results page at all.
	ErrMarkup = errors.New("unrecognized page markup")
)

// StatusError is returned when the dictionary endpoint answers with a
// non-success HTTP status.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.Code, e.URL)
}
