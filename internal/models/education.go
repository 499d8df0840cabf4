package models

import "time"

type Education struct {
	BaseModel
	UserID       string     `gorm:"type:uuid;not null;index" json:"user"`
	School       string     `gorm:"not null" json:"school"`
	Degree       string     `gorm:"not null" json:"degree"`
	FieldOfStudy string     `gorm:"not null" json:"fieldOfStudy"`
	From         time.Time  `gorm:"not null" json:"from"`
	To           *time.Time `json:"to"`
	Current      bool       `gorm:"default:false" json:"current"`
	Description  string     `gorm:"type:text" json:"description"`
	OrderIndex   int        `gorm:"default:0" json:"order"`
}
