package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hathorchat/hathor-wallet-relay/internal/models"
)

func int64ptr(v int64) *int64 { return &v }

func TestNormalizeBalances_HTROnly(t *testing.T) {
	balances := NormalizeBalances(
		&models.RawBalance{Available: int64ptr(500), Locked: 100},
		[]models.RawTokenBalance{},
	)

	assert.Len(t, balances, 1)
	assert.Equal(t, models.BalanceEntry{Available: 5, Locked: 1, Total: 6}, balances["HTR"])
}

func TestNormalizeBalances_WithTokens(t *testing.T) {
	balances := NormalizeBalances(
		&models.RawBalance{Available: int64ptr(500), Locked: 100},
		[]models.RawTokenBalance{
			{Symbol: "VIBE", Available: int64ptr(200)},
		},
	)

	assert.Len(t, balances, 2)
	assert.Equal(t, 5.0, balances["HTR"].Available)
	assert.Equal(t, 2.0, balances["VIBE"].Available)
	assert.Equal(t, 0.0, balances["VIBE"].Locked)
	assert.Equal(t, 2.0, balances["VIBE"].Total)
}

func TestNormalizeBalances_TokenWithLocked(t *testing.T) {
	balances := NormalizeBalances(nil, []models.RawTokenBalance{
		{Symbol: "COFFEE", Available: int64ptr(300), Locked: int64ptr(50)},
	})

	assert.Equal(t, models.BalanceEntry{Available: 3, Locked: 0.5, Total: 3.5}, balances["COFFEE"])
}

func TestNormalizeBalances_EmptyInputs(t *testing.T) {
	// No HTR key when available is undefined.
	balances := NormalizeBalances(&models.RawBalance{}, []models.RawTokenBalance{})
	assert.Empty(t, balances)
}

func TestNormalizeBalances_SkipsIncompleteTokens(t *testing.T) {
	balances := NormalizeBalances(nil, []models.RawTokenBalance{
		{Symbol: "", Available: int64ptr(100)},
		{Symbol: "NODATA"},
	})
	assert.Empty(t, balances)
}

func TestMapHistory_FullEntry(t *testing.T) {
	m := NewHistoryMapper("", false)

	history := m.MapHistory([]models.RawTransaction{
		{TxID: "abc", Value: 250, Token: "HTR", Timestamp: 1000, Status: "confirmed"},
	})

	assert.Len(t, history, 1)
	item := history[0]
	assert.Equal(t, 2.5, item.Amount)
	assert.Equal(t, "HTR", item.Token)
	assert.EqualValues(t, 1000, item.Timestamp)
	assert.Equal(t, "abc", item.TxID)
	assert.Equal(t, "confirmed", item.Status)
	assert.True(t, strings.HasSuffix(item.ExplorerURL, "/transaction/abc"))
	assert.False(t, item.Partial)
}

func TestMapHistory_EmptyEntryDefaults(t *testing.T) {
	m := NewHistoryMapper("", false)
	m.now = func() time.Time { return time.Unix(4242, 0) }

	history := m.MapHistory([]models.RawTransaction{{}})

	assert.Len(t, history, 1)
	item := history[0]
	assert.Equal(t, 0.0, item.Amount)
	assert.Equal(t, "HTR", item.Token)
	assert.EqualValues(t, 4242, item.Timestamp)
	assert.Equal(t, "", item.TxID)
	assert.Equal(t, "confirmed", item.Status)
	assert.False(t, item.Partial)
}

func TestMapHistory_StrictModeFlagsPartial(t *testing.T) {
	m := NewHistoryMapper("", true)

	history := m.MapHistory([]models.RawTransaction{
		{TxID: "abc", Value: 100},
		{TxID: "def", Value: 100, Timestamp: 1000, Status: "confirmed"},
	})

	assert.True(t, history[0].Partial)
	assert.EqualValues(t, 0, history[0].Timestamp)
	assert.Equal(t, "", history[0].Status)

	assert.False(t, history[1].Partial)
}

func TestMapHistory_PreservesOrder(t *testing.T) {
	m := NewHistoryMapper("https://explorer.example/tx/", false)

	history := m.MapHistory([]models.RawTransaction{
		{TxID: "newest", Value: 100, Timestamp: 3000, Status: "confirmed"},
		{TxID: "older", Value: 100, Timestamp: 2000, Status: "confirmed"},
		{TxID: "oldest", Value: 100, Timestamp: 1000, Status: "confirmed"},
	})

	assert.Equal(t, "newest", history[0].TxID)
	assert.Equal(t, "older", history[1].TxID)
	assert.Equal(t, "oldest", history[2].TxID)
	assert.Equal(t, "https://explorer.example/tx/newest", history[0].ExplorerURL)
}
