package wmi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/valentin-kaiser/hwident/logging"
)

var logger = logging.GetPackageLogger("wmi")

// defaultNamespace is the CIM namespace used unless a class is mapped
// elsewhere
const defaultNamespace = `root/CIMV2`

// namespaces maps classes that do not live in the default namespace
var namespaces = map[string]string{
	"Win32_Tpm": `root/CIMV2/Security/MicrosoftTpm`,
}

// CIMSource queries CIM classes through PowerShell Get-CimInstance.
// It only produces useful answers on a Windows host; on other systems every
// query fails, which callers treat as the attribute being unavailable.
type CIMSource struct {
	executor Executor
}

// NewCIMSource creates a source backed by the local PowerShell installation
func NewCIMSource() *CIMSource {
	return &CIMSource{executor: &commandExecutor{}}
}

// NewCIMSourceWithExecutor creates a source running its commands through a
// custom executor
func NewCIMSourceWithExecutor(executor Executor) *CIMSource {
	return &CIMSource{executor: executor}
}

// Query returns the named property of the first instance of the class.
// Array properties printed one byte-range integer per line come back as a
// Bytes result, everything else resolves to the first output line.
func (s *CIMSource) Query(ctx context.Context, class, property string) Result {
	command := fmt.Sprintf(
		"(Get-CimInstance -Namespace '%s' -ClassName %s -ErrorAction Stop | Select-Object -First 1).%s",
		namespaceOf(class), class, property,
	)

	output, err := s.execute(ctx, command)
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return Timeout()
	case err != nil:
		if isClassNotFound(err) {
			return Failure(ErrClassNotFound)
		}
		return Failure(err)
	}

	if bytes, ok := byteValues(output); ok {
		return Bytes(bytes)
	}

	value := firstValue(output)
	if value == "" {
		return Missing()
	}
	return Value(value)
}

// ClassExists reports whether the class is registered on this system
func (s *CIMSource) ClassExists(ctx context.Context, class string) (bool, error) {
	command := fmt.Sprintf(
		"if (Get-CimClass -Namespace '%s' -ClassName %s -ErrorAction SilentlyContinue) { 'present' } else { 'absent' }",
		namespaceOf(class), class,
	)

	output, err := s.execute(ctx, command)
	if err != nil {
		return false, err
	}

	return strings.TrimSpace(output) == "present", nil
}

// execute runs a PowerShell command through the executor
func (s *CIMSource) execute(ctx context.Context, command string) (string, error) {
	logger.Trace().Field("command", command).Msg("executing cim query")
	return s.executor.Execute(ctx, "powershell", "-NoProfile", "-NonInteractive", "-Command", command)
}

// namespaceOf returns the CIM namespace a class lives in
func namespaceOf(class string) string {
	if ns, ok := namespaces[class]; ok {
		return ns
	}
	return defaultNamespace
}

// isClassNotFound classifies PowerShell errors reporting a missing class
func isClassNotFound(err error) bool {
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "invalid class") ||
		strings.Contains(message, "invalid namespace") ||
		strings.Contains(message, "notfound")
}
