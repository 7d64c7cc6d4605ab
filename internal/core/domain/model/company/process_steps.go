package company

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"ordertrack/internal/pkg/errs"
)

// MaxStepNameLength bounds a single step name (characters).
const MaxStepNameLength = 255

var ErrProcessStepsIsNotConstructed = errors.New("ProcessSteps must be created via NewProcessSteps or ParseProcessSteps")

// ProcessSteps is the ordered, non-empty list of production step names of a company.
type ProcessSteps struct {
	names []string
}

// ParseProcessSteps builds the step list from free text: one step per line,
// each line trimmed, empty lines discarded, order preserved.
//
// Example:
//
//	steps, err := company.ParseProcessSteps("Design\n\n  Cutting \nSewing\n")
//	// steps.Names() == []string{"Design", "Cutting", "Sewing"}
func ParseProcessSteps(text string) (ProcessSteps, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	return NewProcessSteps(lines)
}

// NewProcessSteps builds the step list from already separated names. Names are
// trimmed and blank entries dropped; an empty result is a validation error.
func NewProcessSteps(names []string) (ProcessSteps, error) {
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if strings.ContainsAny(name, "\r\n") {
			return ProcessSteps{}, errs.NewValueIsInvalidErrorWithCause(
				"process_steps",
				fmt.Errorf("step %q spans multiple lines", name),
			)
		}
		if utf8.RuneCountInString(name) > MaxStepNameLength {
			return ProcessSteps{}, errs.NewValueIsInvalidErrorWithCause(
				"process_steps",
				fmt.Errorf("step %d is longer than %d characters", len(cleaned)+1, MaxStepNameLength),
			)
		}
		cleaned = append(cleaned, name)
	}

	if len(cleaned) == 0 {
		return ProcessSteps{}, errs.NewValueIsRequiredError("process_steps")
	}

	return ProcessSteps{names: cleaned}, nil
}

// Names returns a copy of the step names in canonical order.
func (s ProcessSteps) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of steps.
func (s ProcessSteps) Len() int {
	return len(s.names)
}

// Text renders the list back into the one-step-per-line form.
func (s ProcessSteps) Text() string {
	return strings.Join(s.names, "\n")
}

func (s ProcessSteps) Validate() error {
	if len(s.names) == 0 {
		return ErrProcessStepsIsNotConstructed
	}
	return nil
}
