package models

// Setting is a site-wide key/value pair. Values are always stored as
// strings; callers JSON-encode anything that is not one already.
type Setting struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
