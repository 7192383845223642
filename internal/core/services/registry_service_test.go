package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/finadmin/manual_ledger_app/internal/apperrors"
	"github.com/finadmin/manual_ledger_app/internal/core/domain"
	"github.com/finadmin/manual_ledger_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRegistryWithStored(t *testing.T, stored []domain.Account) (*services.RegistryService, *MockAccountStore) {
	t.Helper()
	store := new(MockAccountStore)
	store.On("LoadAccounts", mock.Anything).Return(stored, nil).Once()
	return services.NewRegistryService(context.Background(), store), store
}

func TestNewRegistryService_SeedsDefaultsWhenStoreEmpty(t *testing.T) {
	registry, _ := newRegistryWithStored(t, nil)

	accounts, err := registry.Search(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, accounts, 6)
	assert.Equal(t, "john_doe", accounts[0].Username)
	assert.Equal(t, "1058801", accounts[0].ExternalUID)
	assert.True(t, accounts[0].Balance.Equal(decimal.NewFromFloat(1500.00)))
	assert.Equal(t, domain.Inactive, accounts[3].Status)
}

func TestNewRegistryService_SeedsDefaultsWhenStoreUnreadable(t *testing.T) {
	store := new(MockAccountStore)
	store.On("LoadAccounts", mock.Anything).
		Return(nil, fmt.Errorf("%w: not a sequence", apperrors.ErrPersistenceRead)).Once()

	registry := services.NewRegistryService(context.Background(), store)

	accounts, err := registry.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, accounts, 6)
}

func TestNewRegistryService_AdoptsStoredAccountsVerbatim(t *testing.T) {
	stored := []domain.Account{
		{AccountID: 9, Username: "zoe", ExternalUID: "900", Balance: decimal.NewFromInt(7), Status: domain.Active},
		{AccountID: 3, Username: "abe", ExternalUID: "300", Balance: decimal.NewFromInt(1), Status: domain.Active},
	}
	registry, _ := newRegistryWithStored(t, stored)

	accounts, err := registry.Search(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	// Stored order preserved, not re-sorted.
	assert.Equal(t, int64(9), accounts[0].AccountID)
	assert.Equal(t, int64(3), accounts[1].AccountID)
}

func TestRegistryService_FindByID(t *testing.T) {
	registry, _ := newRegistryWithStored(t, nil)

	acc, err := registry.FindByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "alice_smith", acc.Username)

	_, err = registry.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRegistryService_Search(t *testing.T) {
	registry, _ := newRegistryWithStored(t, nil)
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"username case-insensitive substring", "JOHN", []string{"john_doe"}},
		{"partial username", "smith", []string{"alice_smith"}},
		{"uid substring", "1058803", []string{"bob_wilson"}},
		{"partial uid matches all", "10588", []string{"john_doe", "alice_smith", "bob_wilson", "sara_jones", "mike_brown", "emma_davis"}},
		{"no match", "nobody", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := registry.Search(ctx, tt.query)
			require.NoError(t, err)
			names := make([]string, len(got))
			for i, acc := range got {
				names[i] = acc.Username
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestRegistryService_ApplyDelta(t *testing.T) {
	registry, store := newRegistryWithStored(t, []domain.Account{
		{AccountID: 1, Username: "john_doe", ExternalUID: "1058801", Balance: decimal.NewFromInt(100), Status: domain.Active},
	})
	store.On("ReplaceAccounts", mock.Anything, mock.Anything).Return(nil).Once()

	updated, err := registry.ApplyDelta(context.Background(), 1, decimal.NewFromInt(-30))
	require.NoError(t, err)
	assert.True(t, updated.Balance.Equal(decimal.NewFromInt(70)))
	// Other fields untouched.
	assert.Equal(t, "john_doe", updated.Username)
	assert.Equal(t, domain.Active, updated.Status)
	store.AssertExpectations(t)
}

func TestRegistryService_ApplyDelta_NotFound(t *testing.T) {
	registry, store := newRegistryWithStored(t, nil)

	_, err := registry.ApplyDelta(context.Background(), 404, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	store.AssertNotCalled(t, "ReplaceAccounts", mock.Anything, mock.Anything)
}

func TestRegistryService_ApplyDelta_WriteFailureRollsBack(t *testing.T) {
	registry, store := newRegistryWithStored(t, []domain.Account{
		{AccountID: 1, Username: "john_doe", ExternalUID: "1058801", Balance: decimal.NewFromInt(100), Status: domain.Active},
	})
	store.On("ReplaceAccounts", mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: disk full", apperrors.ErrPersistenceWrite)).Once()

	_, err := registry.ApplyDelta(context.Background(), 1, decimal.NewFromInt(50))
	assert.ErrorIs(t, err, apperrors.ErrPersistenceWrite)

	acc, ferr := registry.FindByID(context.Background(), 1)
	require.NoError(t, ferr)
	assert.True(t, acc.Balance.Equal(decimal.NewFromInt(100)), "balance must be rolled back on write failure")
}
