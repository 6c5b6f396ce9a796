package service

import "errors"

var (
	ErrSyncInProgress    = errors.New("sync pass already in progress")
	ErrUnknownEntityType = errors.New("unknown entity type")

	ErrValidationNoStart       = errors.New("time entry start time is required")
	ErrValidationNoName        = errors.New("name is required")
	ErrValidationNoTimeEntry   = errors.New("time entry reference is required")
	ErrMemberNotFound          = errors.New("member not found in organization mirror")
	ErrTimeEntryAlreadyStopped = errors.New("time entry is already stopped")
)
