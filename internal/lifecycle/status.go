package lifecycle

// Status constants for found items.
const (
	ItemAvailable = "available"
	ItemClaimed   = "claimed"
	ItemReturned  = "returned"
)

// Status constants for claims.
const (
	ClaimPending  = "pending"
	ClaimApproved = "approved"
	ClaimRejected = "rejected"
)

var itemTransitions = map[string]map[string]struct{}{
	ItemAvailable: {ItemClaimed: {}},
	// An owner can re-list a claimed item if the hand-off falls through.
	ItemClaimed:  {ItemReturned: {}, ItemAvailable: {}},
	ItemReturned: {},
}

var claimTransitions = map[string]map[string]struct{}{
	ClaimPending:  {ClaimApproved: {}, ClaimRejected: {}},
	ClaimApproved: {},
	ClaimRejected: {},
}

// ItemStatuses lists the valid item status values, in lifecycle order.
func ItemStatuses() []string {
	return []string{ItemAvailable, ItemClaimed, ItemReturned}
}

// ClaimStatuses lists the valid claim status values.
func ClaimStatuses() []string {
	return []string{ClaimPending, ClaimApproved, ClaimRejected}
}

func ValidItemStatus(s string) bool {
	_, ok := itemTransitions[s]
	return ok
}

func ValidClaimStatus(s string) bool {
	_, ok := claimTransitions[s]
	return ok
}

// ItemCanTransition returns whether an item may move from the current
// status to the target status. Repeating the current status is allowed so
// that identical updates stay idempotent.
func ItemCanTransition(from, to string) bool {
	return canTransition(itemTransitions, from, to)
}

// ClaimCanTransition returns whether a claim may move from the current
// status to the target status. Approved and rejected are terminal.
func ClaimCanTransition(from, to string) bool {
	return canTransition(claimTransitions, from, to)
}

func canTransition(transitions map[string]map[string]struct{}, from, to string) bool {
	if from == to {
		return true
	}
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}
