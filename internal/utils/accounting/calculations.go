package accounting

import (
	"fmt"

	"github.com/corefin/ledger_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount applies the correct sign to an entry amount based on
// account type and entry type. This is used by both the posting engine and
// the repository to keep accounting arithmetic consistent.
//
// DEBIT to ASSET/EXPENSE -> Positive (+)
// CREDIT to ASSET/EXPENSE -> Negative (-)
// DEBIT to LIABILITY/EQUITY/REVENUE -> Negative (-)
// CREDIT to LIABILITY/EQUITY/REVENUE -> Positive (+)
func CalculateSignedAmount(entry domain.Entry, accountType domain.AccountType) (decimal.Decimal, error) {
	if !accountType.IsValid() {
		return decimal.Zero, fmt.Errorf("unknown account type %q encountered for account ID %s", accountType, entry.AccountID)
	}

	signedAmount := entry.Amount
	isDebit := entry.EntryType == domain.Debit

	if accountType.DebitIncreases() {
		if !isDebit { // credit to asset/expense
			signedAmount = signedAmount.Neg()
		}
	} else {
		if isDebit { // debit to liability/equity/revenue
			signedAmount = signedAmount.Neg()
		}
	}
	return signedAmount, nil
}

// SumEntryTotals accumulates the debit and credit totals of a set of entries
// in a single pass. It does not validate the entries themselves.
func SumEntryTotals(entries []domain.Entry) (totalDebits, totalCredits decimal.Decimal) {
	totalDebits = decimal.Zero
	totalCredits = decimal.Zero
	for _, e := range entries {
		if e.EntryType == domain.Debit {
			totalDebits = totalDebits.Add(e.Amount)
		} else {
			totalCredits = totalCredits.Add(e.Amount)
		}
	}
	return totalDebits, totalCredits
}
