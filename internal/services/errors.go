package services

import (
	"errors"
	"fmt"

	"topo-schedule/internal/models"
)

// ErrNoChanges is returned when a powerflow run is requested without pending edits.
var ErrNoChanges = errors.New("no changes to elements, cross-border flows are not updated")

// NotFoundError reports a reference to an element or hour slot that does not exist.
type NotFoundError struct {
	ElementType models.ElementType
	ElementName string
	Hour        string
}

func (e *NotFoundError) Error() string {
	if e.Hour != "" && !models.ValidHour(e.Hour) {
		return fmt.Sprintf("hour %q is not a valid schedule slot", e.Hour)
	}
	return fmt.Sprintf("element %q not found in %s table", e.ElementName, e.ElementType)
}

// InvalidStatusError reports a status value outside {open, closed}.
type InvalidStatusError struct {
	Value string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid status %q, expected open or closed", e.Value)
}

// WindowExhaustedError reports an updated window that runs past the end of the dataset.
type WindowExhaustedError struct {
	Window models.Window
	Length int
}

func (e *WindowExhaustedError) Error() string {
	return fmt.Sprintf("updated window [%d, %d) exceeds dataset length %d", e.Window.Start, e.Window.End, e.Length)
}

// LoadError reports a malformed reference dataset.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load flow dataset: %v", e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
