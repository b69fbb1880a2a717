package models

type Gig struct {
	BaseModel
	CompanyID   string    `gorm:"not null;index" json:"companyId"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Location    string    `json:"location"`
	Target      string    `json:"target"`
	Status      GigStatus `gorm:"type:varchar(16);default:'ACTIVE';index" json:"status"`

	Company *Company `gorm:"foreignKey:CompanyID" json:"-"`
}

// GigListItem is a gig row enriched for listings: company summary for rep
// feeds, counters for company dashboards.
type GigListItem struct {
	Gig
	CompanySummary    *CompanySummary `json:"company,omitempty"`
	ApplicationsCount int64           `json:"applicationsCount,omitempty"`
	ReportsCount      int64           `json:"reportsCount,omitempty"`
}
