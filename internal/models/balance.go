package models

// HTR is the symbol of the Hathor network's native token.
const HTR = "HTR"

// AtomicUnitDivisor converts upstream atomic units into display units.
// This is a fixed convention of the wallet-headless service, not a general
// decimal system.
const AtomicUnitDivisor = 100

// BalanceEntry holds a single token's balance in display units.
type BalanceEntry struct {
	Available float64 `json:"available"` // Spendable amount
	Locked    float64 `json:"locked"`    // Amount locked by timelocks or pending transactions
	Total     float64 `json:"total"`     // Available + Locked
}
