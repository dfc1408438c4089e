package service

import "errors"

var (
	// ErrSuperseded is returned by SubmissionService.Submit when a newer
	// submission of the same session began before this one completed.
	ErrSuperseded = errors.New("submission superseded by a newer one")
)
