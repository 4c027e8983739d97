// Package creditagricole parses the CSV statement exports of the
// Crédit Agricole online banking.
package creditagricole

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/comptes-app/backend/internal/importer"
	"github.com/comptes-app/backend/internal/models"
	"github.com/comptes-app/backend/internal/types"
	"github.com/ryanuber/go-glob"
)

// transactionPattern identifies transaction rows: their first field
// starts with a DD/MM/YYYY date. All other rows are headers or footers.
var transactionPattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}`)

// accountPrefixes are the account type labels the bank puts into the
// row naming the account, e.g. "Compte de chèques n° 12345".
var accountPrefixes = []string{
	"Compte*",
	"Livret*",
	"LEP*",
	"LDD*",
	"PEL*",
	"CEL*",
}

// Parse reads a semicolon separated statement export.
//
// Transaction rows have the columns [date, label, debit, credit, unused]
// with exactly one of debit and credit set. A debit becomes a negative
// amount. Any unreadable transaction row fails the whole statement, no
// operations are returned in that case.
//
// With account set, the operations are attributed to it. Otherwise the
// attribution is left to the caller, which may use the sniffed
// Statement.AccountName to pick an account.
func Parse(f io.Reader, account *models.Account) (importer.Statement, error) {
	reader := csv.NewReader(f)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	var statement importer.Statement

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return importer.Statement{}, csvReadError(reader, err)
		}

		if len(record) == 0 || !transactionPattern.MatchString(record[0]) {
			if statement.AccountName == "" {
				statement.AccountName = sniffAccountName(record)
			}
			continue
		}

		operation, err := parseTransaction(reader, record)
		if err != nil {
			return importer.Statement{}, err
		}

		if account != nil {
			operation.AccountID = account.ID
		}
		statement.Operations = append(statement.Operations, operation)
	}

	return statement, nil
}

// parseTransaction turns one transaction row into an operation.
func parseTransaction(reader *csv.Reader, record []string) (*models.Operation, error) {
	if len(record) < 4 {
		return nil, rowError(reader, record, "transaction row has too few columns")
	}

	date, err := types.ParseDate(record[0][:10])
	if err != nil {
		return nil, rowError(reader, record, "transaction date could not be parsed")
	}

	debit, credit := record[2], record[3]

	var amount types.Money
	switch {
	case debit == "" && credit == "":
		return nil, rowError(reader, record, "neither debit nor credit is set")
	case debit != "" && credit != "":
		return nil, rowError(reader, record, "both debit and credit are set")
	case debit != "":
		amount, err = types.ParseMoney("-" + debit)
	default:
		amount, err = types.ParseMoney(credit)
	}
	if err != nil {
		return nil, rowError(reader, record, "amount could not be parsed")
	}

	return &models.Operation{
		Label:  strings.TrimSpace(record[1]),
		Amount: amount,
		Date:   date,
	}, nil
}

// sniffAccountName returns the account name from a row naming the
// account, or an empty string.
func sniffAccountName(record []string) string {
	if len(record) == 0 {
		return ""
	}

	cell := strings.TrimSpace(record[0])
	for _, prefix := range accountPrefixes {
		if glob.Glob(prefix, cell) {
			return cell
		}
	}

	return ""
}

// rowError builds the RowError for the current record, including the
// line of the input the record came from.
func rowError(r *csv.Reader, record []string, reason string) error {
	// always use the first field, we are only interested in the line
	line, _ := r.FieldPos(0)

	return importer.RowError{
		Line:   line,
		Record: record,
		Reason: reason,
	}
}

// csvReadError wraps a reader error with the line it occurred on.
func csvReadError(r *csv.Reader, err error) error {
	line, _ := r.FieldPos(0)

	return fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
