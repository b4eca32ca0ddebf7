package services

import (
	"errors"
	"sort"
	"strings"
)

// Errors shared by the services and mapped to HTTP statuses by the handlers.
var (
	ErrFederationNotFound = errors.New("federation not found")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrTournamentNotFound = errors.New("tournament not found")

	ErrFederationCodeConflict = errors.New("a federation with this code already exists")
	ErrResultConflict         = errors.New("a result for this player is already recorded in this tournament")

	ErrValidationFailed  = errors.New("validation failed")
	ErrExportUnavailable = errors.New("standings exports are not configured")
)

// ValidationError carries per-field messages for well-typed but invalid input.
// It matches ErrValidationFailed with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
