package protocol

import "fmt"

// CommandError represents a failure reported by the device in a
// response with a non-success status.
type CommandError struct {
	// Command is the command that failed
	Command Command

	// Status is the result code from the response
	Status Status

	// StatusInfo is the command-specific auxiliary status code
	StatusInfo byte
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s failed: %s (info 0x%02X)", e.Command, e.Status, e.StatusInfo)
}

// IsCommandError returns true if the error is a CommandError.
func IsCommandError(err error) bool {
	_, ok := err.(*CommandError)
	return ok
}
