package handler

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-name-gen/internal/config"
	"github.com/MKhiriev/go-name-gen/internal/logger"
	"github.com/MKhiriev/go-name-gen/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLogger returns a no-op logger suitable for use in tests.
func newTestLogger() *logger.Logger {
	return logger.Nop()
}

type fixedNameService struct{}

func (fixedNameService) Generate(context.Context, string) string { return "AnnBob" }

func TestNewHandlers(t *testing.T) {
	services := &service.Services{NameService: fixedNameService{}}

	h, err := NewHandlers(services, config.Server{Port: 8080}, newTestLogger())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
	assert.NotNil(t, h.HTTP.Init())
}

func TestNewHandlers_NoNameService(t *testing.T) {
	tests := []struct {
		name     string
		services *service.Services
	}{
		{name: "nil services", services: nil},
		{name: "nil name service", services: &service.Services{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(tt.services, config.Server{}, newTestLogger())

			require.ErrorIs(t, err, errNoNameService)
			assert.Nil(t, h)
		})
	}
}
