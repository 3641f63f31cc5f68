package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexID is an upstream identifier. The clinic API sends ids as numbers on some
// endpoints and as strings on others; FlexID accepts both and writes numeric ids back
// as numbers.
type FlexID string

func (id *FlexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = FlexID(n.String())
	return nil
}

func (id FlexID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id FlexID) String() string {
	return string(id)
}

// Envelope is the response wrapper used by every clinic API endpoint.
type Envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}
