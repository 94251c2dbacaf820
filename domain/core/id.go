package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	DatasetID ID
	RequestID ID
)

// NewDatasetID identifies one loaded copy of the launch data.
func NewDatasetID() DatasetID { return DatasetID(NewID()) }

// NewRequestID tags a single dashboard interaction in the logs.
func NewRequestID() RequestID { return RequestID(NewID()) }

func (id DatasetID) String() string { return ID(id).String() }
func (id RequestID) String() string { return ID(id).String() }

// ParseDatasetID parses a string into DatasetID
func ParseDatasetID(s string) (DatasetID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("dataset ID cannot be empty")
	}
	if _, err := uuid.Parse(s); err != nil {
		return "", fmt.Errorf("dataset ID %q is not a UUID: %w", s, err)
	}
	return DatasetID(s), nil
}
