package models

// SocialLinks is embedded into Profile and flattened into social_* columns.
type SocialLinks struct {
	GitHub    string `json:"github"`
	LinkedIn  string `json:"linkedin"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
}

// Profile is effectively a singleton: one row per owning user, and the
// deployment has a single admin owner. The unique UserID index is the
// create-or-update key.
type Profile struct {
	BaseModel
	UserID         string      `gorm:"type:uuid;uniqueIndex;not null" json:"user"`
	Name           string      `gorm:"not null" json:"name"`
	Title          string      `gorm:"not null" json:"title"`
	Bio            string      `gorm:"type:text;not null" json:"bio"`
	Avatar         string      `json:"avatar"`
	Location       string      `json:"location"`
	Phone          string      `json:"phone"`
	Email          string      `gorm:"not null" json:"email"`
	Website        string      `json:"website"`
	GithubUsername string      `json:"githubUsername"`
	Social         SocialLinks `gorm:"embedded;embeddedPrefix:social_" json:"social"`
}
