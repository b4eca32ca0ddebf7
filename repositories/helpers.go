package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

func checkAffectedRows(result sql.Result, notFoundError error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return notFoundError
	}
	return nil
}

// isUniqueViolation reports whether err is a postgres unique_violation on the named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == uniqueViolationCode && pqErr.Constraint == constraint
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching search anywhere in the value, with
// wildcard characters in search taken literally.
func containsPattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}

// literalRegex builds a case-insensitive regular expression that matches search as a plain substring.
func literalRegex(search string) string {
	return regexp.QuoteMeta(search)
}
