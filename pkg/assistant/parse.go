package assistant

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseVerdict decodes an assistant reply into v. Replies are often wrapped
// in markdown code fences, so backticks and a leading json tag are dropped
// before decoding. Fields missing from the reply keep their zero values.
func ParseVerdict(reply string, v any) error {
	s := strings.TrimSpace(reply)
	s = strings.ReplaceAll(s, "`", "")
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimPrefix(s, "JSON")
	s = strings.TrimSpace(s)

	// tolerate prose around the object
	if start, end := strings.Index(s, "{"), strings.LastIndex(s, "}"); start >= 0 && end > start {
		s = s[start : end+1]
	}

	if err := json.Unmarshal([]byte(s), v); err != nil {
		return fmt.Errorf("could not decode assistant reply %q: %w", reply, err)
	}

	return nil
}
