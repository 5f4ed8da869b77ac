package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	tests := []struct {
		name                            string
		version, date, commit           string
		wantVersion, wantDate, wantHash string
		wantString                      string
	}{
		{
			name:        "all set",
			version:     "v1.2.0",
			date:        "2026-10-01",
			commit:      "abc123",
			wantVersion: "v1.2.0",
			wantDate:    "2026-10-01",
			wantHash:    "abc123",
			wantString:  "v1.2.0 (date: 2026-10-01, commit: abc123)",
		},
		{
			name:        "nothing injected",
			wantVersion: "N/A",
			wantDate:    "N/A",
			wantHash:    "N/A",
			wantString:  "N/A (date: N/A, commit: N/A)",
		},
		{
			name:        "only version",
			version:     "v0.1.0",
			wantVersion: "v0.1.0",
			wantDate:    "N/A",
			wantHash:    "N/A",
			wantString:  "v0.1.0 (date: N/A, commit: N/A)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewAppBuildInfo(tt.version, tt.date, tt.commit)

			assert.Equal(t, tt.wantVersion, info.BuildVersion())
			assert.Equal(t, tt.wantDate, info.BuildDate())
			assert.Equal(t, tt.wantHash, info.BuildCommit())
			assert.Equal(t, tt.wantString, info.String())
		})
	}
}
