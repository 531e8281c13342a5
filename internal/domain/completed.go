package domain

import (
	"encoding/json"
	"strings"
)

// NormalizeCompleted maps the representations the legacy clients send for a
// task's completed flag onto a strict boolean: true, the number 1 and the
// case-insensitive string "yes" mean done; everything else means not done.
// Every reader of the flag must go through this function.
func NormalizeCompleted(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case int:
		return t == 1
	case int64:
		return t == 1
	case float64:
		return t == 1
	case string:
		return strings.EqualFold(t, "yes")
	}
	return false
}

// CompletedFlag is a bool that accepts the legacy JSON representations on
// input. The flexible forms exist only at the request boundary; once
// unmarshaled the value is a plain bool.
type CompletedFlag bool

func (c *CompletedFlag) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = CompletedFlag(NormalizeCompleted(v))
	return nil
}

func (c CompletedFlag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(c))
}
