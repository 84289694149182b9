package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNotJSONObject is returned by [DecodeJSONObject] for well-formed JSON
// that is not an object (arrays, strings, numbers, null).
var ErrNotJSONObject = errors.New("JSON value is not an object")

// DecodeJSONObject decodes data as a single JSON object. Numbers are kept as
// json.Number so that re-encoding reproduces them exactly.
func DecodeJSONObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode JSON: unexpected data after top-level value")
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, ErrNotJSONObject
	}

	return obj, nil
}
