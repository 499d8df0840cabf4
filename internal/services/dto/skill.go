package dto

type SkillRequest struct {
	Name     string `json:"name" validate:"required"`
	Level    int    `json:"level" validate:"required,min=1,max=100"`
	Category string `json:"category" validate:"required,oneof=Frontend Backend Database DevOps Other"`
	Icon     string `json:"icon"`
	Order    int    `json:"order"`
}
