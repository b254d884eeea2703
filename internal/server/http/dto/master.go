package dto

// CreateMasterRequest describes the master registration payload.
type CreateMasterRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	ServiceType string `json:"serviceType"`
	Location    string `json:"location"`
}

// EarningsResponse mirrors the master earnings accumulators.
type EarningsResponse struct {
	Total        float64 `json:"total"`
	CurrentMonth float64 `json:"currentMonth"`
}

// MasterResponse describes a master record.
type MasterResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Phone       string           `json:"phone"`
	ServiceType string           `json:"serviceType"`
	IsAvailable bool             `json:"isAvailable"`
	Location    string           `json:"location"`
	Earnings    EarningsResponse `json:"earnings"`
}

// AssignRequest carries the master to attach to an order.
type AssignRequest struct {
	MasterID string `json:"masterId"`
}
