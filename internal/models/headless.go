package models

// Wire types of the upstream wallet-headless HTTP API.

// WalletStatusReady is the statusCode the headless service reports once a
// wallet session is fully loaded and usable.
const WalletStatusReady = 3

// StartRequest is the body of POST /start.
type StartRequest struct {
	WalletID   string `json:"wallet-id"`
	Seed       string `json:"seed"`
	Passphrase string `json:"passphrase"`
	Network    string `json:"network,omitempty"`
}

// StartResponse is the body returned by POST /start.
type StartResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// WalletStatus is the body returned by GET /wallet/status.
type WalletStatus struct {
	StatusCode    int    `json:"statusCode"`
	StatusMessage string `json:"statusMessage"`
	Network       string `json:"network"`
	ServerURL     string `json:"serverUrl"`
}

// AddressResponse is the body returned by GET /wallet/address.
type AddressResponse struct {
	Address string `json:"address"`
}

// RawBalance is the body returned by GET /wallet/balance, in atomic units.
// Available is a pointer so "field absent" is distinguishable from zero.
type RawBalance struct {
	Available *int64 `json:"available,omitempty"`
	Locked    int64  `json:"locked"`
}

// RawTokenBalance is one element of the GET /wallet/tokens array.
type RawTokenBalance struct {
	Symbol    string `json:"symbol"`
	Available *int64 `json:"available,omitempty"`
	Locked    *int64 `json:"locked,omitempty"`
}

// RawTransaction is one element of the GET /wallet/tx-history array.
type RawTransaction struct {
	TxID      string `json:"tx_id"`
	Value     int64  `json:"value"`
	Token     string `json:"token"`
	Timestamp int64  `json:"timestamp"`
	Status    string `json:"status"`
}

// SendTxRequest is the body of POST /wallet/simple-send-tx. Amount is in
// atomic units. Token is omitted for HTR.
type SendTxRequest struct {
	WalletID string `json:"wallet-id"`
	Address  string `json:"address"`
	Amount   int64  `json:"amount"`
	Token    string `json:"token,omitempty"`
}

// SendTxResponse is the body returned by POST /wallet/simple-send-tx.
type SendTxResponse struct {
	Success bool   `json:"success"`
	TxID    string `json:"txId"`
	Message string `json:"message,omitempty"`
}
