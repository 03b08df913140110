package errors

import (
	"encoding/json"
	"fmt"
)

// BusinessErr is raised when a request violates a business rule which caller can fix
type BusinessErr struct {
	target  string
	message string
}

func (e *BusinessErr) Error() string {
	return e.message
}

// Target returns field or entity the error relates to
func (e *BusinessErr) Target() string {
	return e.target
}

func (e *BusinessErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Target  string `json:"target"`
		Message string `json:"message"`
	}{Target: e.target, Message: e.message})
}

func NewBusinessErr(target string, msg string) error {
	return &BusinessErr{
		target:  target,
		message: msg,
	}
}

// EntryNotFoundErr is raised when referenced entry doesn't exist
type EntryNotFoundErr struct {
	message string
}

func (e *EntryNotFoundErr) Error() string {
	return e.message
}

func NewEntryNotFoundErr(msg string) *EntryNotFoundErr {
	return &EntryNotFoundErr{message: msg}
}

// InvalidStatusTransitionErr is raised when complaint status can't be moved to the requested one
type InvalidStatusTransitionErr struct {
	From string
	To   string
}

func (e *InvalidStatusTransitionErr) Error() string {
	return fmt.Sprintf("cannot change status from %s to %s", e.From, e.To)
}

func (e *InvalidStatusTransitionErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Message string `json:"message"`
		From    string `json:"from"`
		To      string `json:"to"`
	}{Message: e.Error(), From: e.From, To: e.To})
}

func NewInvalidStatusTransitionErr(from, to string) *InvalidStatusTransitionErr {
	return &InvalidStatusTransitionErr{From: from, To: to}
}

// ReferenceExhaustedErr is raised when no unique complaint reference was found within attempts limit
type ReferenceExhaustedErr struct {
	attempts int
}

func (e *ReferenceExhaustedErr) Error() string {
	return fmt.Sprintf("failed to generate unique complaint reference after %d attempts", e.attempts)
}

func NewReferenceExhaustedErr(attempts int) *ReferenceExhaustedErr {
	return &ReferenceExhaustedErr{attempts: attempts}
}

// ConcurrentModificationErr is raised when entry was changed by someone else since it was read
type ConcurrentModificationErr struct {
	message string
}

func (e *ConcurrentModificationErr) Error() string {
	return e.message
}

func NewConcurrentModificationErr(msg string) *ConcurrentModificationErr {
	return &ConcurrentModificationErr{message: msg}
}
