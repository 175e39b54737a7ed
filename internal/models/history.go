package models

// HistoryItem is a display-ready transaction history entry.
type HistoryItem struct {
	Amount      float64 `json:"amount"`            // Value in display units
	Token       string  `json:"token"`             // Token symbol, HTR when the upstream omits it
	Timestamp   int64   `json:"timestamp"`         // Unix seconds
	TxID        string  `json:"txId"`              // Transaction hash
	Status      string  `json:"status"`            // Upstream status string
	ExplorerURL string  `json:"explorerUrl"`       // Block-explorer link for the transaction
	Partial     bool    `json:"partial,omitempty"` // Set in strict mode when the upstream omitted timestamp or status
}
