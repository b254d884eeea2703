package model

// Earnings holds additive payout accumulators for a master.
type Earnings struct {
	Total        float64
	CurrentMonth float64
}

// Master represents a field worker fulfilling service orders.
type Master struct {
	ID          string
	Name        string
	Phone       string
	ServiceType string
	IsAvailable bool
	Location    string
	Earnings    Earnings
}
