// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-name-gen/internal/config"
	"github.com/MKhiriev/go-name-gen/internal/logger"
	"github.com/MKhiriev/go-name-gen/internal/mock"
	"github.com/MKhiriev/go-name-gen/internal/service"
	"github.com/MKhiriev/go-name-gen/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// withCount puts the {number} URL parameter into the request the way the
// router does.
func withCount(r *http.Request, count string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(countParam, count)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestHandler_RedirectToDefault(t *testing.T) {
	h := newStubHandler(&stubNameService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.redirectToDefault(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/2/", rr.Header().Get("Location"))
}

func TestHandler_Name_Formats(t *testing.T) {
	tests := []struct {
		name            string
		format          models.OutputFormat
		wantContentType string
		wantBody        string
	}{
		{
			name:            "raw",
			format:          models.FormatRaw,
			wantContentType: "text/plain; charset=utf-8",
			wantBody:        "AnnAnnAnn",
		},
		{
			name:            "json",
			format:          models.FormatJSON,
			wantContentType: "application/json; charset=utf-8",
			wantBody:        "{\n  \"name\": \"AnnAnnAnn\"\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newNameHandler(t, "ann")

			req := withCount(httptest.NewRequest(http.MethodGet, "/3/", nil), "3")
			rr := httptest.NewRecorder()
			h.name(tt.format)(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.wantContentType, rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestHandler_Name_HTML(t *testing.T) {
	h := newNameHandler(t, "ann")
	h.template = "<title>EXAMPLENAME</title>"

	req := withCount(httptest.NewRequest(http.MethodGet, "/2/", nil), "2")
	rr := httptest.NewRecorder()
	h.name(models.FormatHTML)(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "<title>AnnAnn</title>", rr.Body.String())
}

// Разбор числа делает сервис, хендлер передаёт сегмент пути как есть.
func TestHandler_Name_PassesRawCount(t *testing.T) {
	for _, count := range []string{"2", "abc", "-1", "99999999999", ""} {
		t.Run(count, func(t *testing.T) {
			stub := &stubNameService{name: "Bob"}
			h := newStubHandler(stub)

			req := withCount(httptest.NewRequest(http.MethodGet, "/", nil), count)
			rr := httptest.NewRecorder()
			h.name(models.FormatRaw)(rr, req)

			require.Equal(t, []string{count}, stub.counts)
			assert.Equal(t, "Bob", rr.Body.String())
		})
	}
}

func TestHandler_Name_WithMockService(t *testing.T) {
	ctrl := gomock.NewController(t)
	nameService := mock.NewMockNameService(ctrl)
	nameService.EXPECT().Generate(gomock.Any(), "0").Return("")

	h := NewHandler(&service.Services{NameService: nameService}, config.Server{}, logger.Nop())

	req := withCount(httptest.NewRequest(http.MethodGet, "/0/json", nil), "0")
	rr := httptest.NewRecorder()
	h.name(models.FormatJSON)(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "{\n  \"name\": \"\"\n}", rr.Body.String())
}
