//go:build !windows

package wmi

import "github.com/valentin-kaiser/hwident/apperror"

// MachineGUID is only available on Windows
func MachineGUID() (string, error) {
	return "", apperror.NewError("machine GUID is only available on windows")
}
