package handler

import (
	"testing"

	"github.com/MKhiriev/jaeger-ui-devconfig/internal/config"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/logger"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers(t *testing.T) {
	t.Run("http address set", func(t *testing.T) {
		handlers, err := NewHandlers(&service.Services{}, config.StructuredConfig{
			Server: config.Server{HTTPAddress: "localhost:5173", StaticDir: ".", IndexFile: "index.html"},
		}, logger.Nop())

		require.NoError(t, err)
		assert.NotNil(t, handlers.HTTP)
		assert.NotNil(t, handlers.Reload)
	})

	t.Run("no address", func(t *testing.T) {
		handlers, err := NewHandlers(&service.Services{}, config.StructuredConfig{}, logger.Nop())

		assert.ErrorIs(t, err, errNoHandlersAreCreated)
		assert.Nil(t, handlers)
	})
}
