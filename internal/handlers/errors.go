package handlers

import (
	"errors"

	"github.com/hathorchat/hathor-wallet-relay/internal/hathor"
	"github.com/hathorchat/hathor-wallet-relay/internal/services"
)

// isUpstreamFailure reports whether err comes from the wallet-headless
// service rather than from the relay itself.
func isUpstreamFailure(err error) bool {
	var ue *hathor.UpstreamError
	return errors.Is(err, services.ErrUpstreamUnavailable) ||
		errors.Is(err, services.ErrReadyTimeout) ||
		errors.Is(err, hathor.ErrUnreachable) ||
		errors.As(err, &ue)
}

// upstreamDetails returns the raw wallet-headless response body carried by
// err, or empty when it holds none.
func upstreamDetails(err error) string {
	var ue *hathor.UpstreamError
	if errors.As(err, &ue) {
		return ue.Body
	}
	return ""
}
