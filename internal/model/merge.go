package model

import "encoding/json"

// MergePatch applies a shallow JSON merge onto dst: every key present in
// patch replaces the corresponding field wholesale, later keys win. dst must
// be a pointer to a struct with JSON tags.
func MergePatch(dst any, patch map[string]any) error {
	raw, err := json.Marshal(dst)
	if err != nil {
		return err
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}
	for k, v := range patch {
		doc[k] = v
	}
	merged, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(merged, dst)
}
