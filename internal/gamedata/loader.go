package gamedata

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Load decodes an embedded JSON file into T. Unknown keys are rejected so a
// typo in a data file surfaces instead of silently falling back.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("reading embedded %s: %w", filename, err)
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("decoding %s: %w", filename, err)
	}

	return result, nil
}
