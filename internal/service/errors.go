package service

import "errors"

var (
	// ErrPatchNotObject is reported when the JSON patch file holds valid JSON
	// that is not an object.
	ErrPatchNotObject = errors.New("patch file must contain a JSON object")
)
