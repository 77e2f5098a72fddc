// internal/domain/profile.go
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Measurement holds a biometric value that clients send either as a JSON
// string ("72") or a JSON number (72). The value is kept as text; nothing
// downstream does arithmetic on it.
type Measurement string

// UnmarshalJSON accepts strings, numbers and null.
func (m *Measurement) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = Measurement(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("measurement must be a string or number, got %s", data)
	}
	*m = Measurement(n.String())
	return nil
}

// Profile is what the user fills in before asking for a plan. Only Name, Goal
// and Level feed the plan; the rest must be present but are not interpreted.
type Profile struct {
	Name   string      `json:"name" binding:"required"`
	Age    Measurement `json:"age" binding:"required"`
	Gender string      `json:"gender" binding:"required"`
	Height Measurement `json:"height" binding:"required"`
	Weight Measurement `json:"weight" binding:"required"`
	Goal   string      `json:"goal" binding:"required"`
	Level  string      `json:"level" binding:"required"`
}
