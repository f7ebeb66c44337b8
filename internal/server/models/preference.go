package models

import "encoding/json"

// PreferenceRecord is the per-user blob of saved grid state: named filter
// presets, an opaque session blob, and optional column layout. The grid
// payloads are opaque to the server, so they are kept as raw JSON.
//
// A save is a full replacement of the record, never a merge.
type PreferenceRecord struct {
	Filters json.RawMessage `json:"filters"`
	Session json.RawMessage `json:"session"`
	Columns json.RawMessage `json:"columns,omitempty"`
}

// EmptyPreferenceRecord returns the record seeded at registration time.
func EmptyPreferenceRecord() *PreferenceRecord {
	return &PreferenceRecord{
		Filters: json.RawMessage(`{}`),
		Session: json.RawMessage(`{}`),
	}
}
