package payload

import (
	"bytes"
	"encoding/json"
)

// NullableID tells an absent JSON key apart from an explicit null. Set is
// false when the key never appeared in the body.
type NullableID struct {
	Set   bool
	Value *uint64
}

func (n *NullableID) UnmarshalJSON(data []byte) error {
	n.Set = true

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil

		return nil
	}

	var id uint64
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}

	n.Value = &id

	return nil
}

func (n NullableID) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Value)
}
