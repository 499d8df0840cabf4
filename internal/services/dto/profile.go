package dto

type SocialLinksRequest struct {
	GitHub    string `json:"github"`
	LinkedIn  string `json:"linkedin"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
}

// UpsertProfileRequest creates the profile on first submission and fully
// replaces it afterwards, keyed by the authenticated owner.
type UpsertProfileRequest struct {
	Name           string             `json:"name" validate:"required"`
	Title          string             `json:"title" validate:"required"`
	Bio            string             `json:"bio" validate:"required"`
	Avatar         string             `json:"avatar"`
	Location       string             `json:"location"`
	Phone          string             `json:"phone"`
	Email          string             `json:"email" validate:"required,email"`
	Website        string             `json:"website" validate:"omitempty,url"`
	GithubUsername string             `json:"githubUsername"`
	Social         SocialLinksRequest `json:"social"`
}
