// Package importer turns bank statement exports into operations.
package importer

import (
	"fmt"
	"strings"

	"github.com/comptes-app/backend/internal/models"
)

// Statement is the result of parsing one statement file.
//
// Parsing is all or nothing: a statement is only returned when every
// transaction row of the file could be read. The operations are not
// checked against existing ones, importing the same file twice counts
// every transaction twice.
type Statement struct {
	// AccountName is the account name sniffed from the file, empty when
	// the file does not name one. It is only a fallback for callers that
	// did not pre-select an account, no account is ever created from it.
	AccountName string

	Operations []*models.Operation
}

// RowError reports a transaction row that cannot be turned into an
// operation. It carries the raw record for diagnostics.
type RowError struct {
	Line   int
	Record []string
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, strings.Join(e.Record, ";"))
}
