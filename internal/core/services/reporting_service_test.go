package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finadmin/manual_ledger_app/internal/core/domain"
	"github.com/finadmin/manual_ledger_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleLedger() []domain.Transaction {
	now := time.Now().UTC()
	return []domain.Transaction{
		{TransactionID: 3, AccountID: 1, Username: "john_doe", Amount: decimal.NewFromInt(25), Kind: domain.Withdraw, Visibility: domain.VisibilityHidden, Remark: "fee", CreatedAt: now, Status: domain.StatusCompleted},
		{TransactionID: 2, AccountID: 2, Username: "alice_smith", Amount: decimal.NewFromFloat(10.50), Kind: domain.Deposit, Visibility: domain.VisibilityDisplay, Remark: "bonus", CreatedAt: now, Status: domain.StatusCompleted},
		{TransactionID: 1, AccountID: 1, Username: "john_doe", Amount: decimal.NewFromInt(100), Kind: domain.Deposit, Visibility: domain.VisibilityDisplay, Remark: "top up", CreatedAt: now, Status: domain.StatusCompleted},
	}
}

func TestComputeStatistics(t *testing.T) {
	stats := services.ComputeStatistics(sampleLedger())

	assert.Equal(t, 3, stats.TotalTransactions)
	assert.True(t, stats.TotalDeposits.Equal(decimal.NewFromFloat(110.50)), "deposits: %s", stats.TotalDeposits)
	assert.True(t, stats.TotalWithdrawals.Equal(decimal.NewFromInt(25)), "withdrawals: %s", stats.TotalWithdrawals)
	assert.True(t, stats.NetFlow.Equal(decimal.NewFromFloat(85.50)), "net flow: %s", stats.NetFlow)
}

func TestComputeStatistics_EmptyLedger(t *testing.T) {
	stats := services.ComputeStatistics(nil)

	assert.Equal(t, 0, stats.TotalTransactions)
	assert.True(t, stats.TotalDeposits.IsZero())
	assert.True(t, stats.TotalWithdrawals.IsZero())
	assert.True(t, stats.NetFlow.IsZero())
}

func TestComputeStatistics_ZeroAmountsTolerated(t *testing.T) {
	// Restored payloads from older versions may carry zero-valued amounts.
	ledger := []domain.Transaction{
		{TransactionID: 2, Kind: domain.Deposit},
		{TransactionID: 1, Kind: domain.Deposit, Amount: decimal.NewFromInt(5)},
	}
	stats := services.ComputeStatistics(ledger)

	assert.Equal(t, 2, stats.TotalTransactions)
	assert.True(t, stats.TotalDeposits.Equal(decimal.NewFromInt(5)))
}

func TestReportingService_GetStatistics_Idempotent(t *testing.T) {
	accountStore := new(MockAccountStore)
	ledgerStore := new(MockLedgerStore)
	accountStore.On("LoadAccounts", mock.Anything).Return(nil, nil).Once()
	ledgerStore.On("LoadTransactions", mock.Anything).Return(sampleLedger(), nil).Once()

	ctx := context.Background()
	registry := services.NewRegistryService(ctx, accountStore)
	ledger := services.NewLedgerService(ctx, ledgerStore, registry)
	reporting := services.NewReportingService(ledger)

	first := reporting.GetStatistics(ctx)
	second := reporting.GetStatistics(ctx)

	require.Equal(t, first.TotalTransactions, second.TotalTransactions)
	assert.True(t, first.TotalDeposits.Equal(second.TotalDeposits))
	assert.True(t, first.TotalWithdrawals.Equal(second.TotalWithdrawals))
	assert.True(t, first.NetFlow.Equal(second.NetFlow))
}
