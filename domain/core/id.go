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
		// Fallback to v4 if v7 fails
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
	RunID     ID
	TrustCode ID
	MetricKey ID
)

// String conversions for domain IDs
func (id RunID) String() string     { return ID(id).String() }
func (id TrustCode) String() string { return ID(id).String() }
func (id MetricKey) String() string { return ID(id).String() }

// NewRunID creates a fresh run identifier
func NewRunID() RunID {
	return RunID(NewID())
}

// ParseTrustCode parses a string into TrustCode
func ParseTrustCode(s string) (TrustCode, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("trust code cannot be empty")
	}
	return TrustCode(strings.TrimSpace(s)), nil
}

// NewMetricKey builds the qualified metric name for a sheet-level metric.
// SitRep metrics are namespaced by the sheet they came from, so the same
// column header on two sheets stays distinguishable downstream.
func NewMetricKey(sheetName, metric string) MetricKey {
	return MetricKey(sheetName + "_" + strings.TrimSpace(metric))
}
