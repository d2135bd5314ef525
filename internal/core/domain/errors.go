package domain

import "errors"

// Error kinds returned by the escrow core. Details are attached with
// fmt.Errorf("%w: ...") so callers classify with errors.Is.
var (
	// ErrInvalidInput marks malformed or out of range request fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrAlreadyExists is returned when a record's derived address is taken.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotFound is returned when no record lives at an address.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized marks a signer or identity mismatch.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrCampaignInactive is returned when a campaign is sold out or missing.
	ErrCampaignInactive = errors.New("campaign inactive")
	// ErrEscrowEmpty is returned when the vault holds no unit to release.
	ErrEscrowEmpty = errors.New("escrow empty")
	// ErrLinkCampaignMismatch is returned when an affiliate link belongs to
	// a different campaign than the one being settled.
	ErrLinkCampaignMismatch = errors.New("affiliate link belongs to another campaign")
	// ErrInsufficientFunds is returned when the buyer cannot pay.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrOverflow is returned instead of wrapping integer arithmetic.
	ErrOverflow = errors.New("arithmetic overflow")
	// ErrInvariantViolation marks state that normal flow can never produce.
	ErrInvariantViolation = errors.New("invariant violation")
)

// ErrorCode returns a stable machine readable code for err. Errors outside
// the taxonomy, ErrOverflow and ErrInvariantViolation are all "internal".
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrLinkCampaignMismatch):
		return "link_campaign_mismatch"
	case errors.Is(err, ErrCampaignInactive):
		return "campaign_inactive"
	case errors.Is(err, ErrEscrowEmpty):
		return "escrow_empty"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrAlreadyExists):
		return "already_exists"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
