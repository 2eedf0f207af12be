package domain

// CheckoutState tracks one user's checkout session. Transitions only move
// forward within a session; abandoning a session simply lets it expire.
type CheckoutState string

const (
	CheckoutStateIdle              CheckoutState = "idle"
	CheckoutStateAddressCollection CheckoutState = "address_collection"
	CheckoutStateConfirmation      CheckoutState = "confirmation"
	CheckoutStateSubmitting        CheckoutState = "submitting"
	CheckoutStateSuccess           CheckoutState = "success"
	CheckoutStateFailed            CheckoutState = "failed"
)

type CheckoutSession struct {
	UserID          string          `json:"user_id"`
	State           CheckoutState   `json:"state"`
	PaymentMethod   string          `json:"payment_method"`
	DeliveryDetails DeliveryDetails `json:"delivery_details"`
}

func NewCheckoutSession(userID string) CheckoutSession {
	return CheckoutSession{
		UserID: userID,
		State:  CheckoutStateIdle,
	}
}
