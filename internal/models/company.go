package models

type Company struct {
	BaseModel
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password;not null" json:"-"`
}

// CompanySummary is the shape embedded in gig and application listings.
type CompanySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CompanyStats aggregates a company's activity counters.
type CompanyStats struct {
	GigsCount         int64 `json:"gigsCount"`
	ApplicationsCount int64 `json:"applicationsCount"`
	ReportsCount      int64 `json:"reportsCount"`
}
