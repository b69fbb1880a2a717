package models

type Report struct {
	BaseModel
	GigID     string  `gorm:"not null;index" json:"gigId"`
	RepID     string  `gorm:"not null;index" json:"repId"`
	CompanyID string  `gorm:"not null;index" json:"companyId"`
	Reason    string  `gorm:"not null" json:"reason"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Location  string  `json:"location"`
	ImageURL  string  `json:"imageUrl"`

	Gig *Gig `gorm:"foreignKey:GigID" json:"-"`
	Rep *Rep `gorm:"foreignKey:RepID" json:"-"`
}

// ReportListItem embeds the reporting rep's summary.
type ReportListItem struct {
	Report
	RepItem *RepSummary `json:"rep,omitempty"`
}
