package models

// UserRecord maps an external Telegram identity to its custodial wallet
// credentials. Telegram IDs are numeric on the wire but are always compared
// as strings, so the record stores the string form.
type UserRecord struct {
	ExternalID string `json:"telegramId" db:"external_id"` // Stable external user identifier
	WalletID   string `json:"walletId" db:"wallet_id"`     // Opaque wallet identifier assigned at provisioning
	Seed       string `json:"seed,omitempty" db:"seed"`    // Mnemonic seed used to (re)start the wallet session
}
