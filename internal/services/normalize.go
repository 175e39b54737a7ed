package services

import (
	"time"

	"github.com/hathorchat/hathor-wallet-relay/internal/models"
)

// DefaultExplorerTxURL is the block-explorer transaction URL prefix used
// when none is configured.
const DefaultExplorerTxURL = "https://explorer.alpha.nano-testnet.hathor.network/transaction/"

// NormalizeBalances converts upstream atomic-unit balances into the
// per-symbol display-unit map. Symbols with no available data are omitted
// entirely rather than reported as zero.
func NormalizeBalances(htr *models.RawBalance, tokens []models.RawTokenBalance) map[string]models.BalanceEntry {
	balances := make(map[string]models.BalanceEntry)

	if htr != nil && htr.Available != nil {
		available := float64(*htr.Available) / models.AtomicUnitDivisor
		locked := float64(htr.Locked) / models.AtomicUnitDivisor
		balances[models.HTR] = models.BalanceEntry{
			Available: available,
			Locked:    locked,
			Total:     available + locked,
		}
	}

	for _, token := range tokens {
		if token.Symbol == "" || token.Available == nil {
			continue
		}
		available := float64(*token.Available) / models.AtomicUnitDivisor
		var locked float64
		if token.Locked != nil {
			locked = float64(*token.Locked) / models.AtomicUnitDivisor
		}
		balances[token.Symbol] = models.BalanceEntry{
			Available: available,
			Locked:    locked,
			Total:     available + locked,
		}
	}

	return balances
}

// HistoryMapper converts raw upstream transaction records into display-ready
// history items with explorer links.
type HistoryMapper struct {
	explorerTxURL string
	strict        bool
	now           func() time.Time
}

// NewHistoryMapper creates a mapper. In strict mode, items missing a
// timestamp or status are flagged as partial instead of backfilled with
// fabricated values.
func NewHistoryMapper(explorerTxURL string, strict bool) *HistoryMapper {
	if explorerTxURL == "" {
		explorerTxURL = DefaultExplorerTxURL
	}
	return &HistoryMapper{
		explorerTxURL: explorerTxURL,
		strict:        strict,
		now:           time.Now,
	}
}

// MapHistory maps raw entries one to one, preserving upstream ordering.
// No sorting, deduplication or truncation is performed here.
func (m *HistoryMapper) MapHistory(raw []models.RawTransaction) []models.HistoryItem {
	history := make([]models.HistoryItem, 0, len(raw))

	for _, tx := range raw {
		item := models.HistoryItem{
			Amount:      float64(tx.Value) / models.AtomicUnitDivisor,
			Token:       tx.Token,
			Timestamp:   tx.Timestamp,
			TxID:        tx.TxID,
			Status:      tx.Status,
			ExplorerURL: m.explorerTxURL + tx.TxID,
		}

		if item.Token == "" {
			item.Token = models.HTR
		}
		if tx.Timestamp == 0 {
			if m.strict {
				item.Partial = true
			} else {
				item.Timestamp = m.now().Unix()
			}
		}
		if tx.Status == "" {
			if m.strict {
				item.Partial = true
			} else {
				item.Status = "confirmed"
			}
		}

		history = append(history, item)
	}

	return history
}
