package models

// TransferEvent is published to Kafka after a successful tip or send.
type TransferEvent struct {
	TransferID       string  `json:"transfer_id"`       // Unique identifier of this transfer event
	Timestamp        int64   `json:"timestamp"`         // Unix timestamp (seconds) of the transfer
	Amount           float64 `json:"amount"`            // Amount in display units
	Token            string  `json:"token"`             // Token symbol
	SenderID         string  `json:"sender_id"`         // External ID of the sending user
	RecipientAddress string  `json:"recipient_address"` // Destination wallet address
	TxID             string  `json:"tx_id"`             // Transaction hash reported by the upstream
	Operation        string  `json:"operation"`         // "tip" or "send"
}
