package models

import "time"

type Experience struct {
	BaseModel
	UserID      string     `gorm:"type:uuid;not null;index" json:"user"`
	Title       string     `gorm:"not null" json:"title"`
	Company     string     `gorm:"not null" json:"company"`
	Location    string     `json:"location"`
	From        time.Time  `gorm:"not null" json:"from"`
	To          *time.Time `json:"to"`
	Current     bool       `gorm:"default:false" json:"current"`
	Description string     `gorm:"type:text" json:"description"`
	OrderIndex  int        `gorm:"default:0" json:"order"`
}
