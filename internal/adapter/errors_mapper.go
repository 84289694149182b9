package adapter

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

// maxErrorBodyLength caps the part of an error body kept in the error text.
// Backends behind a proxy may answer with whole HTML pages.
const maxErrorBodyLength = 256

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
	http.StatusGatewayTimeout:      ErrGatewayTimeout,
}

// mapHTTPError returns nil for a 2xx response and a sentinel-wrapped error
// for anything else.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	excerpt := bodyExcerpt(resp.Body())
	if excerpt == "" {
		excerpt = http.StatusText(status)
	}

	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, excerpt)
	}
	return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, status, excerpt)
}

func bodyExcerpt(body []byte) string {
	excerpt := strings.TrimSpace(string(body))
	if len(excerpt) <= maxErrorBodyLength {
		return excerpt
	}

	cut := maxErrorBodyLength
	for cut > 0 && !utf8.RuneStart(excerpt[cut]) {
		cut--
	}
	return excerpt[:cut] + "..."
}
