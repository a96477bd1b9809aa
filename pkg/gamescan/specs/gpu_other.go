//go:build !windows

package specs

import (
	"context"
	"errors"
)

var errWMIUnsupported = errors.New("wmi is only available on windows")

func queryVideoController(context.Context) (string, error) {
	return "", errWMIUnsupported
}
