package domain

// OrderStatus is the fulfillment state of a placed order.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// IsValid reports whether s is one of the known order states.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentMethod is how the customer chose to pay at checkout.
type PaymentMethod string

const (
	PaymentMethodCOD  PaymentMethod = "COD"
	PaymentMethodCard PaymentMethod = "Card"
)

// IsValid reports whether m is one of the supported payment methods.
func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCOD || m == PaymentMethodCard
}

// Fulfillment milestone names, in timeline order. Every order carries
// exactly these five steps.
const (
	StepOrderPlaced      = "Order Placed"
	StepPaymentConfirmed = "Payment Confirmed"
	StepProcessing       = "Processing"
	StepShipped          = "Shipped"
	StepDelivered        = "Delivered"
)

// TimelineSteps returns the fixed milestone names in order.
func TimelineSteps() []string {
	return []string{StepOrderPlaced, StepPaymentConfirmed, StepProcessing, StepShipped, StepDelivered}
}

// OrderStep is a single fulfillment milestone on an order's timeline.
type OrderStep struct {
	Step      string `json:"step"`
	Completed bool   `json:"completed"`
	Date      string `json:"date,omitempty"`
}

// Order is an immutable snapshot of a checked-out cart plus its
// fulfillment timeline. Items are copies taken at purchase time, so
// later catalog edits never alter historical orders.
type Order struct {
	ID              string        `json:"id"`
	CustomerID      string        `json:"customer_id"`
	CustomerName    string        `json:"customer_name"`
	Items           []CartItem    `json:"items"`
	Total           float64       `json:"total"`
	Status          OrderStatus   `json:"status"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	Date            string        `json:"date"`
	ShippingAddress string        `json:"shipping_address"`
	Timeline        []OrderStep   `json:"timeline"`
}

// ContainsStore reports whether the order includes at least one item
// belonging to the given store.
func (o *Order) ContainsStore(storeID string) bool {
	for _, it := range o.Items {
		if it.StoreID == storeID {
			return true
		}
	}
	return false
}
