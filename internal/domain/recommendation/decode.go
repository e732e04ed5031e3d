package recommendation

import (
	"bytes"
	"encoding/json"
)

// DecodeProfile reads a survey body leniently. An empty or non-object body is
// the empty profile, and a sub-object that does not fit its shape (a string
// workStyle, a quoted confidence rating) is left unanswered.
func DecodeProfile(body []byte) Profile {
	var p Profile
	if len(bytes.TrimSpace(body)) == 0 {
		return p
	}
	_ = json.Unmarshal(body, &p)
	return p
}

func (p *Profile) UnmarshalJSON(b []byte) error {
	*p = Profile{}

	var parts map[string]json.RawMessage
	if err := json.Unmarshal(b, &parts); err != nil {
		return nil
	}
	decodePart(parts["interests"], &p.Interests)
	decodePart(parts["workStyle"], &p.WorkStyle)
	decodePart(parts["intent"], &p.Intent)
	decodePart(parts["confidence"], &p.Confidence)
	return nil
}

func decodePart[T any](raw json.RawMessage, dst *T) {
	if len(raw) == 0 {
		return
	}
	var v T
	if json.Unmarshal(raw, &v) == nil {
		*dst = v
	}
}
