package models

type Application struct {
	BaseModel
	GigID  string            `gorm:"not null;index:idx_applications_gig_rep,unique" json:"gigId"`
	RepID  string            `gorm:"not null;index:idx_applications_gig_rep,unique" json:"repId"`
	Status ApplicationStatus `gorm:"type:varchar(16);default:'PENDING'" json:"status"`

	Gig *Gig `gorm:"foreignKey:GigID" json:"-"`
	Rep *Rep `gorm:"foreignKey:RepID" json:"-"`
}

// ApplicationListItem joins the application with what each listing embeds.
type ApplicationListItem struct {
	Application
	GigItem *Gig        `json:"gig,omitempty"`
	RepItem *RepSummary `json:"rep,omitempty"`
}
