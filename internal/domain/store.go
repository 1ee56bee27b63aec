package domain

// StoreStatus is the lifecycle state of a seller's store on the platform.
type StoreStatus string

const (
	StoreStatusActive    StoreStatus = "Active"
	StoreStatusPending   StoreStatus = "Pending"
	StoreStatusSuspended StoreStatus = "Suspended"
)

// IsValid reports whether s is one of the known store states.
func (s StoreStatus) IsValid() bool {
	switch s {
	case StoreStatusActive, StoreStatusPending, StoreStatusSuspended:
		return true
	}
	return false
}

// Store represents a seller's storefront on the marketplace
type Store struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Logo           string      `json:"logo"`
	Banner         string      `json:"banner"`
	Description    string      `json:"description"`
	Rating         float64     `json:"rating"`
	ReviewsCount   int         `json:"reviews_count"`
	Category       string      `json:"category"`
	CommissionRate float64     `json:"commission_rate"`
	Status         StoreStatus `json:"status"`
	PlatformDomain string      `json:"platform_domain"`
}
