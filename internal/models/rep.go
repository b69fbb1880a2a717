package models

type Rep struct {
	BaseModel
	Name         string  `gorm:"not null" json:"name"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"column:password;not null" json:"-"`
	IsVerified   bool    `gorm:"default:false" json:"isVerified"`
	IsPassed     bool    `gorm:"default:false" json:"isPassed"`
	IsFraud      bool    `gorm:"default:false" json:"isFraud"`
	Rating       float64 `gorm:"default:0" json:"rating"`
	RatingCount  int     `gorm:"default:0" json:"ratingCount"`
	ProfilePic   string  `json:"profilePic,omitempty"`
	PhoneNo      string  `json:"phoneNo,omitempty"`
	Bio          string  `json:"bio,omitempty"`
}

// RepSummary is the shape embedded in application and report listings.
type RepSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RepRating is the rating aggregate returned by the rate operation.
type RepRating struct {
	Rating      float64 `json:"rating"`
	RatingCount int     `json:"ratingCount"`
}
