package models

type Admin struct {
	BaseModel
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password;not null" json:"-"`
}
