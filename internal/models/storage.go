package models

import (
	"encoding/json"
	"time"
)

// Record is the generic persistence envelope for user domain data. Subject
// groups records by kind ("portfolio", "alert", "expense", "subscription"),
// Key identifies the record within its subject, and Data holds the JSON
// payload.
type Record struct {
	Subject  string          `json:"subject"`
	Key      string          `json:"key"`
	Data     json.RawMessage `json:"data"`
	Version  int             `json:"version"`
	DateTime time.Time       `json:"datetime"`
}

// NewRecord marshals v into a Record for the given subject and key.
func NewRecord(subject, key string, v any) (*Record, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &Record{Subject: subject, Key: key, Data: data}, nil
}

// Decode unmarshals the record payload into v.
func (r *Record) Decode(v any) error {
	return json.Unmarshal(r.Data, v)
}
