//go:build windows

package wmi

import (
	"golang.org/x/sys/windows/registry"

	"github.com/valentin-kaiser/hwident/apperror"
)

// MachineGUID reads the Windows installation GUID from
// HKLM\SOFTWARE\Microsoft\Cryptography. It identifies the OS installation
// rather than the hardware and serves as a cross-check value next to the
// hardware-derived identifier.
func MachineGUID() (string, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Cryptography`, registry.QUERY_VALUE|registry.WOW64_64KEY)
	if err != nil {
		return "", apperror.NewError("opening cryptography registry key failed").AddError(err)
	}
	defer key.Close()

	guid, _, err := key.GetStringValue("MachineGuid")
	if err != nil {
		return "", apperror.NewError("reading MachineGuid registry value failed").AddError(err)
	}

	return guid, nil
}
