//go:build windows

package specs

import (
	"context"

	"github.com/StackExchange/wmi"
)

type videoController struct {
	Name string
}

// queryVideoController asks WMI for the first Win32_VideoController.
func queryVideoController(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var controllers []videoController
	if err := wmi.Query("SELECT Name FROM Win32_VideoController", &controllers); err != nil {
		return "", err
	}
	if len(controllers) == 0 {
		return "", ErrNoAdapter
	}
	return controllers[0].Name, nil
}
