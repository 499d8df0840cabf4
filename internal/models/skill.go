package models

type SkillCategory string

const (
	SkillCategoryFrontend SkillCategory = "Frontend"
	SkillCategoryBackend  SkillCategory = "Backend"
	SkillCategoryDatabase SkillCategory = "Database"
	SkillCategoryDevOps   SkillCategory = "DevOps"
	SkillCategoryOther    SkillCategory = "Other"
)

type Skill struct {
	BaseModel
	UserID     string        `gorm:"type:uuid;not null;index" json:"user"`
	Name       string        `gorm:"not null" json:"name"`
	Level      int           `gorm:"not null" json:"level"`
	Category   SkillCategory `gorm:"type:varchar(20);not null" json:"category"`
	Icon       string        `json:"icon"`
	OrderIndex int           `gorm:"default:0" json:"order"`
}
