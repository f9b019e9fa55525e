package report

// CategoryTotal is the spend aggregated over one category
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// MonthlyTotal is the spend aggregated over one calendar month
type MonthlyTotal struct {
	Month string  `json:"month"` // YYYY-MM
	Total float64 `json:"total"`
	Count int     `json:"count"`
}
