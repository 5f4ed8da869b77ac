package models

// OutputFormat names one of the representations a generated name can be
// served in.
type OutputFormat string

const (
	// FormatHTML renders the name into the page template.
	FormatHTML OutputFormat = "html"
	// FormatRaw returns the bare name as plain text.
	FormatRaw OutputFormat = "raw"
	// FormatJSON wraps the name into a single-field JSON object.
	FormatJSON OutputFormat = "json"
)

// ContentType returns the value of the Content-Type header for the format.
func (f OutputFormat) ContentType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatJSON:
		return "application/json; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}
