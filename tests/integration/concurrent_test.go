package integration

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gowallet/internal/gateway"
	"github.com/iho/gowallet/tests/testutil"
)

// Funding the same wallet from many goroutines must serialize on the row
// lock so that no credit is lost.
func TestConcurrentFunding(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	router := newTestRouter(t, testDB, gateway.AlwaysSucceed)

	wallet := testDB.CreateTestWallet(ctx, "race@example.com", "+2348077777777")
	testDB.LinkTestBankAccount(ctx, wallet.ID, "0123456789", "Race Wallet", "GTBank")

	const workers = 16
	amount := decimal.NewFromInt(25)

	var wg sync.WaitGroup
	codes := make([]int, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec := fundRequest(t, router, wallet.ID, "0123456789", amount.String(), "PAYSTACK")
			codes[i] = rec.Code
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		require.Equal(t, http.StatusCreated, code, "request %d", i)
	}

	want := amount.Mul(decimal.NewFromInt(workers))
	balance := testDB.WalletBalance(ctx, wallet.ID)
	assert.True(t, balance.Equal(want), "balance = %s, want %s", balance, want)

	count, err := testDB.Queries.CountTransactionsByWallet(ctx, wallet.ID)
	require.NoError(t, err)
	assert.EqualValues(t, workers, count)
}
