package domain

import "context"

// CompanyStats is the company dashboard projection, derived entirely
// from offers and applications owned by the company.
type CompanyStats struct {
	ActiveJobs          int64  `json:"active_jobs"`
	TotalApplications   int64  `json:"total_applications"`
	PendingApplications int64  `json:"pending_applications"`
	HiredCount          int64  `json:"hired_count"`
	CompanyName         string `json:"company_name,omitempty"`
}

// RepMonthlyStats is placeholder engagement analytics. The zeros are
// deliberate; no computation backs these yet.
type RepMonthlyStats struct {
	CallsMade           int `json:"calls_made"`
	Closures            int `json:"closures"`
	AvgTicket           int `json:"avg_ticket"`
	EstimatedCommission int `json:"estimated_commission"`
}

// RepStats is the rep dashboard projection.
type RepStats struct {
	TotalOffers     int64            `json:"total_offers"`
	MonthlyStats    RepMonthlyStats  `json:"monthly_stats"`
	LatestProcesses []JobApplication `json:"latest_processes"`
}

type DashboardUsecase interface {
	CompanyStats(ctx context.Context, companyUserID int64) (*CompanyStats, error)
	RepStats(ctx context.Context, repUserID int64) (*RepStats, error)
}
