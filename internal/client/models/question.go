// Package models defines the question records the capture client tracks.
package models

import (
	"errors"
	"fmt"
	"strings"
)

// Status is the lifecycle state of a question record.
//
// A record is pending from the moment its image is accepted until the
// processing service returns a result, ready once the processed image has
// been reconciled in, and failed when a submission attempt was exhausted
// without a result. Failed records can be resubmitted by the user.
type Status string

const (
	StatusPending Status = "pending"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusReady, StatusFailed:
		return true
	}
	return false
}

// Answer is the user's multiple-choice selection. The zero value means the
// question has not been answered yet.
type Answer string

const (
	AnswerNone Answer = ""
	AnswerA    Answer = "A"
	AnswerB    Answer = "B"
	AnswerC    Answer = "C"
	AnswerD    Answer = "D"
	AnswerE    Answer = "E"
)

var ErrInvalidAnswer = errors.New("invalid answer")

// ParseAnswer converts user input into an Answer, accepting lower case.
func ParseAnswer(s string) (Answer, error) {
	a := Answer(strings.ToUpper(strings.TrimSpace(s)))
	switch a {
	case AnswerA, AnswerB, AnswerC, AnswerD, AnswerE:
		return a, nil
	}
	return AnswerNone, fmt.Errorf("%w: %q", ErrInvalidAnswer, s)
}

// Question is one captured-and-optionally-processed image plus its eventual
// answer.
//
// ID is the reconciliation key: unique within a folder, stable for the
// record's lifetime. URI points at the image currently representing the
// record and is replaced exactly once, when processing completes. Answer is
// independent of Status and may be set while the record is still pending.
type Question struct {
	ID     string
	URI    string
	Status Status
	Answer Answer
}

// Answered reports whether the user has selected a choice.
func (q Question) Answered() bool {
	return q.Answer != AnswerNone
}
