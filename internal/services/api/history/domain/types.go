// Package domain holds DTOs for history http and service contracts
package domain

// WeekRecord is one persisted extraction, with the prediction when the
// model service scored it
type WeekRecord struct {
	ID            string             `json:"id"`
	Provider      string             `json:"provider"`
	Account       string             `json:"account"`
	FechaDesde    string             `json:"fecha_desde"`
	FechaHasta    string             `json:"fecha_hasta"`
	Features      map[string]float64 `json:"features"`
	WeekType      *int               `json:"week_type,omitempty"`
	BurnoutIndex  *float64           `json:"burnout_index,omitempty"`
	Contributions map[string]float64 `json:"contributions,omitempty"`
	CreatedAt     string             `json:"created_at"`
}

// ListInput filters the week listing. Zero values mean no filter
type ListInput struct {
	Provider string
	Account  string
	From     string // inclusive fecha_desde lower bound, ISO date
	To       string // inclusive fecha_desde upper bound, ISO date
	Limit    int
}
