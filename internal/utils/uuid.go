package utils

import "github.com/google/uuid"

// NewRecordID returns a time-ordered UUID (v7) string for a freshly created
// record. Time-ordered ids keep the unsynced index append-mostly and make
// cursor pagination visit records roughly in creation order.
func NewRecordID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
