package service

import (
	"fmt"

	"mailtriage/internal/model"
)

// Pipeline error taxonomy. Every failure is recovered inside the
// orchestrator and surfaced only as the result's error string; nothing
// here ever propagates to the batch caller.

// ValidationError reports the first structural violation found in a raw
// email record.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ClassificationError covers both oracle failures and replies outside the
// closed category set. The surfaced message is deliberately uniform.
type ClassificationError struct {
	Err error
}

func (e *ClassificationError) Error() string {
	return "classification failed"
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}

// TemplateError is defensive: with the closed category set every category
// has a template, but the responder still checks.
type TemplateError struct {
	Category model.Category
}

func (e *TemplateError) Error() string {
	return "no response template"
}

// DispatchError wraps a failure in a side-effecting action.
type DispatchError struct {
	Action string
	Err    error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Action, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
