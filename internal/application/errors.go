package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fatal categories of a generation run. Nothing
// in this taxonomy is retried; every hit aborts the run.
var (
	ErrUsage    = errors.New("invalid usage")
	ErrDocBuild = errors.New("documentation build failed")
)

// UsageError reports an invalid combination of configuration options.
// It is always raised before any filesystem mutation.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage: %s", e.Message)
}

func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}
