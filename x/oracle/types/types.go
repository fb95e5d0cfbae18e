package types

import "fmt"

// RequestStatus tracks a request through its lifecycle. Transitions only move
// forward: Pending -> {Fulfilled | Cancelled | Refunded}. Terminal statuses are
// immutable.
type RequestStatus uint8

const (
	// StatusPending is the only non-terminal status
	StatusPending RequestStatus = iota
	// StatusFulfilled means a bundle passed validation and prices were published
	StatusFulfilled
	// StatusCancelled means the owner closed the request before fulfillment
	StatusCancelled
	// StatusRefunded means an administrator or controller closed the request
	StatusRefunded
)

// String implements fmt.Stringer
func (s RequestStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusFulfilled:
		return "fulfilled"
	case StatusCancelled:
		return "cancelled"
	case StatusRefunded:
		return "refunded"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// Valid reports whether the status is one of the defined lifecycle states
func (s RequestStatus) Valid() bool {
	return s <= StatusRefunded
}

// IsTerminal reports whether no further transition is allowed
func (s RequestStatus) IsTerminal() bool {
	return s != StatusPending && s.Valid()
}

// RequestStatusFromString parses a status name as printed by String.
// The empty string is accepted by list queries to mean "any".
func RequestStatusFromString(s string) (RequestStatus, error) {
	switch s {
	case "pending":
		return StatusPending, nil
	case "fulfilled":
		return StatusFulfilled, nil
	case "cancelled":
		return StatusCancelled, nil
	case "refunded":
		return StatusRefunded, nil
	default:
		return 0, fmt.Errorf("unknown request status: %q", s)
	}
}

// Request is a unit of work representing "please refresh these asset prices".
// Ids are allocated densely at creation and double as the logical clock that
// guards the latest-price view against out-of-order fulfillment.
type Request struct {
	Id        uint64        `json:"id"`
	CreatedAt int64         `json:"created_at"`
	Owner     string        `json:"owner"`
	Payload   []byte        `json:"payload,omitempty"`
	Status    RequestStatus `json:"status"`
	// ExpiresAt of zero means the request never expires
	ExpiresAt int64 `json:"expires_at,omitempty"`
	// PaymentAvailable records whether the owner's escrow balance covered the
	// minimum at creation time. Creation currently hard-fails otherwise, so the
	// field is always true; it is kept for a potential free/trusted request path.
	PaymentAvailable bool `json:"payment_available"`
}

// Expired reports whether the request carries an expiry that has passed
func (r Request) Expired(now int64) bool {
	return r.ExpiresAt != 0 && now > r.ExpiresAt
}

// PriceFeed is the durable per-asset price record.
//
// Round and Price form an audit trail: they advance on every successful
// fulfillment that includes the asset, in arrival order. LatestPrice and
// LatestTimestamp are the publication consumers should trust as current; they
// only advance when the fulfilling request id is at or above the module's
// high-water mark, so they never regress in logical time.
type PriceFeed struct {
	AssetIndex      uint32 `json:"asset_index"`
	Round           uint64 `json:"round"`
	Price           uint64 `json:"price"`
	LatestPrice     uint64 `json:"latest_price"`
	LatestTimestamp int64  `json:"latest_timestamp"`
}

// Signer is a registered off-chain price signer. Membership is a plain
// allow-list; deactivation takes effect for all subsequent validations.
type Signer struct {
	Address string `json:"address"`
	Active  bool   `json:"active"`
}
