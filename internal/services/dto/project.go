package dto

// ProjectRequest is used for both create and update. Updates apply full PUT
// semantics: omitted fields fall back to their zero values.
type ProjectRequest struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	GithubURL    string   `json:"githubUrl" validate:"omitempty,url"`
	LiveURL      string   `json:"liveUrl" validate:"omitempty,url"`
	Featured     bool     `json:"featured"`
	Order        int      `json:"order"`
}
