package services

import (
	"context"

	"github.com/pkg/errors"

	"github.com/mentoro-app/mentoro-server/internal/model"
	"github.com/mentoro-app/mentoro-server/internal/store"
)

// FinanceService manages income and expense records.
type FinanceService struct {
	store store.Store
}

func NewFinanceService(s store.Store) *FinanceService { return &FinanceService{store: s} }

func validateTransaction(txType string, amount float64) error {
	if txType != model.TxIncome && txType != model.TxExpense {
		return errors.Wrapf(model.ErrValidation, "transaction type must be %q or %q", model.TxIncome, model.TxExpense)
	}
	if amount <= 0 {
		return errors.Wrap(model.ErrValidation, "amount must be positive")
	}
	return nil
}

func (s *FinanceService) CreateTransaction(ctx context.Context, tx *model.Transaction) (*model.Transaction, error) {
	if err := validateTransaction(tx.Type, tx.Amount); err != nil {
		return nil, err
	}
	return s.store.Transactions().Create(ctx, tx)
}

func (s *FinanceService) ListTransactions(ctx context.Context, ownerID string) ([]*model.Transaction, error) {
	return s.store.Transactions().List(ctx, ownerID)
}

func (s *FinanceService) UpdateTransaction(ctx context.Context, ownerID, txID, txType string, amount float64, description string) error {
	if err := validateTransaction(txType, amount); err != nil {
		return err
	}
	return s.store.Transactions().Update(ctx, ownerID, txID, txType, amount, description)
}

func (s *FinanceService) DeleteTransaction(ctx context.Context, ownerID, txID string) error {
	return s.store.Transactions().Delete(ctx, ownerID, txID)
}

// Summary totals the owner's transactions. Expenses subtract from net.
func (s *FinanceService) Summary(ctx context.Context, ownerID string) (*model.FinanceSummary, error) {
	txs, err := s.store.Transactions().List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	var sum model.FinanceSummary
	for _, tx := range txs {
		if tx.Type == model.TxIncome {
			sum.TotalIncome += tx.Amount
		} else {
			sum.TotalExpense += tx.Amount
		}
	}
	sum.Net = sum.TotalIncome - sum.TotalExpense
	return &sum, nil
}
