package models

// ProductivityDay services created on one calendar day
type ProductivityDay struct {
	Date       string `json:"date"`
	Total      int64  `json:"total"`
	Concluidos int64  `json:"concluidos"`
	Prontos    int64  `json:"prontos"`
}

// DashboardSummary store-wide counters shown on the dashboard cards
type DashboardSummary struct {
	Total      int64            `json:"total"`
	Revenue    float64          `json:"revenue"`
	Pending    int64            `json:"pending"`
	InProgress int64            `json:"in_progress"`
	ByStatus   map[Status]int64 `json:"by_status"`
}
