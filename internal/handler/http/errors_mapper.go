package http

import (
	"errors"
	"net/http"

	"github.com/akalinin/go-worklog/internal/service"
	"github.com/akalinin/go-worklog/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrSyncInProgress:          http.StatusConflict,
	service.ErrUnknownEntityType:       http.StatusNotFound,
	service.ErrValidationNoStart:       http.StatusBadRequest,
	service.ErrValidationNoName:        http.StatusBadRequest,
	service.ErrValidationNoTimeEntry:   http.StatusBadRequest,
	service.ErrMemberNotFound:          http.StatusNotFound,
	service.ErrTimeEntryAlreadyStopped: http.StatusConflict,

	store.ErrRecordNotFound:        http.StatusNotFound,
	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
	store.ErrBeginningTransaction:  http.StatusInternalServerError,
	store.ErrCommittingTransaction: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
