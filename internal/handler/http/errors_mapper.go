package http

import (
	"errors"
	"io/fs"
	"net/http"
)

var errorStatusMap = map[error]int{
	fs.ErrNotExist:   http.StatusNotFound,
	fs.ErrPermission: http.StatusForbidden,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
