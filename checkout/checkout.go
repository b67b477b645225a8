package checkout

import "github.com/leonhardc/storefront-api/cart"

// Decision is the outcome of the checkout gate.
type Decision int

const (
	Allowed Decision = iota
	DeniedNoProfile
	DeniedEmptyCart
)

// MayCheckout decides whether the user may proceed to the purchase summary.
// A user needs a finished profile and at least one product in the cart; the
// profile check comes first. Where to redirect a denied user is the caller's
// concern.
func MayCheckout(hasProfile bool, c cart.Cart) Decision {
	if !hasProfile {
		return DeniedNoProfile
	}
	if c.IsEmpty() {
		return DeniedEmptyCart
	}
	return Allowed
}

// Reason returns the user-facing message for a denial, empty when allowed.
func (d Decision) Reason() string {
	switch d {
	case DeniedNoProfile:
		return "User has no profile. Please finish your registration before checking out."
	case DeniedEmptyCart:
		return "There are no products in your cart."
	default:
		return ""
	}
}
