package adapter

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/jaeger-ui-devconfig/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     error
		wantMessage string
	}{
		{name: "200", status: http.StatusOK, body: `{}`},
		{name: "204", status: http.StatusNoContent},
		{name: "404", status: http.StatusNotFound, body: "404 page not found", wantErr: ErrNotFound, wantMessage: "404 page not found"},
		{name: "502 without body", status: http.StatusBadGateway, wantErr: ErrBadGateway, wantMessage: "Bad Gateway"},
		{name: "504", status: http.StatusGatewayTimeout, wantErr: ErrGatewayTimeout},
		{name: "418", status: http.StatusTeapot, body: "short and stout", wantErr: ErrUnexpectedStatus, wantMessage: "418: short and stout"},
		{name: "redirect is not success", status: http.StatusNotModified, wantErr: ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			resp, err := utils.NewHTTPClient(srv.URL, 0).R().Get("/")
			require.NoError(t, err)

			err = mapHTTPError(resp)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMessage)
		})
	}
}

func TestBodyExcerpt(t *testing.T) {
	assert.Equal(t, "short", bodyExcerpt([]byte("  short\n")))

	long := bodyExcerpt([]byte(strings.Repeat("x", 1000)))
	assert.Len(t, long, maxErrorBodyLength+len("..."))
	assert.True(t, strings.HasSuffix(long, "..."))

	multibyte := bodyExcerpt([]byte(strings.Repeat("я", 300)))
	assert.True(t, strings.HasSuffix(multibyte, "..."))
	assert.True(t, strings.HasPrefix(multibyte, "я"))
	assert.NotContains(t, multibyte, "�")
}
