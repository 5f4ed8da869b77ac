// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-name-gen/internal/logger"
	"github.com/MKhiriev/go-name-gen/internal/utils"
	"github.com/MKhiriev/go-name-gen/models"
	"github.com/MKhiriev/go-name-gen/web"
	"github.com/go-chi/chi/v5"
)

// defaultPath is where the root redirects to.
const defaultPath = "/2/"

func (h *Handler) redirectToDefault(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, defaultPath, http.StatusFound)
}

// name returns the handler serving a freshly generated name in format.
func (h *Handler) name(format models.OutputFormat) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		rawCount := chi.URLParam(r, countParam)
		name := h.services.NameService.Generate(r.Context(), rawCount)

		log.Debug().
			Str("count", rawCount).
			Str("format", string(format)).
			Str("name", name).
			Msg("name generated")

		if _, err := utils.WriteText(w, h.render(format, name), format.ContentType(), http.StatusOK); err != nil {
			log.Err(err).Str("func", "*Handler.name").Msg("error writing name")
		}
	}
}

// render builds the response body for name. The JSON body is assembled by
// hand and name is not escaped: words come from the operator's word list.
func (h *Handler) render(format models.OutputFormat, name string) string {
	switch format {
	case models.FormatHTML:
		return strings.ReplaceAll(h.template, web.Placeholder, name)
	case models.FormatJSON:
		return "{\n  \"name\": \"" + name + "\"\n}"
	default:
		return name
	}
}
