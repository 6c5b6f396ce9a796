package store

import "errors"

// Sentinel errors returned by the local store. Callers can match against them
// with [errors.Is]; the sync engine treats any of them as fatal for the
// current pass, since records cannot safely be marked synced while the local
// database is failing.
var (
	// ErrRecordNotFound indicates the requested record id does not exist.
	ErrRecordNotFound = errors.New("record not found")

	// ErrBuildingSQLQuery indicates the query builder produced an error
	// before the database was touched.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery indicates the database rejected or failed a query.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow indicates a result row could not be scanned into a model.
	ErrScanningRow = errors.New("error scanning row")

	// ErrBeginningTransaction indicates a transaction could not be started.
	ErrBeginningTransaction = errors.New("error beginning transaction")

	// ErrCommittingTransaction indicates a transaction could not be committed.
	ErrCommittingTransaction = errors.New("error committing transaction")
)
