//go:build !linux

package platform

import (
	"fmt"
	"runtime"
)

// NewBackend reports that display detection is unavailable on this platform.
func NewBackend() (Backend, error) {
	return nil, fmt.Errorf("display detection is not supported on %s", runtime.GOOS)
}
