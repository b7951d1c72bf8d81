package models

import "encoding/json"

// extraFields returns the JSON object keys of data that are not in the
// known set. Remote resources keep these in an Extra map so fields the
// service adds later survive a decode/encode round trip. Request
// models stay strict; only responses get this escape hatch.
func extraFields(data []byte, known ...string) map[string]any {
	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return nil
	}
	for _, k := range known {
		delete(all, k)
	}
	if len(all) == 0 {
		return nil
	}
	return all
}
