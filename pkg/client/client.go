// Package client is a typed HTTP client for the portfolio API, paired with a
// generic state container for callers that render the results.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/services/dto"
)

// APIError carries the server's error envelope. Message is rendered to the
// user verbatim.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type Option func(*Client)

// WithToken sets the bearer token sent on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the underlying transport, mainly for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer token, typically after Login.
func (c *Client) SetToken(token string) {
	c.token = token
}

// doRequest performs one round trip and decodes the response into out when
// out is non-nil. Non-2xx responses become an *APIError.
func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
	}

	var req *http.Request
	var err error
	if reqBody != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeAPIError(resp *http.Response) error {
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error.Message != "" {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	req := dto.LoginRequest{Email: email, Password: password}
	if err := c.doRequest(ctx, http.MethodPost, "/api/users/login", req, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

func (c *Client) GetProfile(ctx context.Context) (*models.Profile, error) {
	var out models.Profile
	if err := c.doRequest(ctx, http.MethodGet, "/api/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveProfile creates the profile on first call and fully replaces it after.
func (c *Client) SaveProfile(ctx context.Context, req dto.UpsertProfileRequest) (*models.Profile, error) {
	var out models.Profile
	if err := c.doRequest(ctx, http.MethodPost, "/api/profile", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var out []models.Project
	if err := c.doRequest(ctx, http.MethodGet, "/api/projects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProject(ctx context.Context, id string) (*models.Project, error) {
	var out models.Project
	if err := c.doRequest(ctx, http.MethodGet, "/api/projects/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProject(ctx context.Context, req dto.ProjectRequest) (*models.Project, error) {
	var out models.Project
	if err := c.doRequest(ctx, http.MethodPost, "/api/projects", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProject(ctx context.Context, id string, req dto.ProjectRequest) (*models.Project, error) {
	var out models.Project
	if err := c.doRequest(ctx, http.MethodPut, "/api/projects/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.doRequest(ctx, http.MethodDelete, "/api/projects/"+id, nil, nil)
}

func (c *Client) ListSkills(ctx context.Context) ([]models.Skill, error) {
	var out []models.Skill
	if err := c.doRequest(ctx, http.MethodGet, "/api/skills", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetSkill(ctx context.Context, id string) (*models.Skill, error) {
	var out models.Skill
	if err := c.doRequest(ctx, http.MethodGet, "/api/skills/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateSkill(ctx context.Context, req dto.SkillRequest) (*models.Skill, error) {
	var out models.Skill
	if err := c.doRequest(ctx, http.MethodPost, "/api/skills", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSkill(ctx context.Context, id string, req dto.SkillRequest) (*models.Skill, error) {
	var out models.Skill
	if err := c.doRequest(ctx, http.MethodPut, "/api/skills/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSkill(ctx context.Context, id string) error {
	return c.doRequest(ctx, http.MethodDelete, "/api/skills/"+id, nil, nil)
}

func (c *Client) ListExperience(ctx context.Context) ([]models.Experience, error) {
	var out []models.Experience
	if err := c.doRequest(ctx, http.MethodGet, "/api/experience", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetExperience(ctx context.Context, id string) (*models.Experience, error) {
	var out models.Experience
	if err := c.doRequest(ctx, http.MethodGet, "/api/experience/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateExperience(ctx context.Context, req dto.ExperienceRequest) (*models.Experience, error) {
	var out models.Experience
	if err := c.doRequest(ctx, http.MethodPost, "/api/experience", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateExperience(ctx context.Context, id string, req dto.ExperienceRequest) (*models.Experience, error) {
	var out models.Experience
	if err := c.doRequest(ctx, http.MethodPut, "/api/experience/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteExperience(ctx context.Context, id string) error {
	return c.doRequest(ctx, http.MethodDelete, "/api/experience/"+id, nil, nil)
}

func (c *Client) ListEducation(ctx context.Context) ([]models.Education, error) {
	var out []models.Education
	if err := c.doRequest(ctx, http.MethodGet, "/api/education", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetEducation(ctx context.Context, id string) (*models.Education, error) {
	var out models.Education
	if err := c.doRequest(ctx, http.MethodGet, "/api/education/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateEducation(ctx context.Context, req dto.EducationRequest) (*models.Education, error) {
	var out models.Education
	if err := c.doRequest(ctx, http.MethodPost, "/api/education", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateEducation(ctx context.Context, id string, req dto.EducationRequest) (*models.Education, error) {
	var out models.Education
	if err := c.doRequest(ctx, http.MethodPut, "/api/education/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEducation(ctx context.Context, id string) error {
	return c.doRequest(ctx, http.MethodDelete, "/api/education/"+id, nil, nil)
}

// SendContactMessage is the only public write on the API.
func (c *Client) SendContactMessage(ctx context.Context, req dto.CreateContactRequest) (*models.ContactMessage, error) {
	var out models.ContactMessage
	if err := c.doRequest(ctx, http.MethodPost, "/api/contact", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	var out []models.ContactMessage
	if err := c.doRequest(ctx, http.MethodGet, "/api/contact", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetContactMessage(ctx context.Context, id string) (*models.ContactMessage, error) {
	var out models.ContactMessage
	if err := c.doRequest(ctx, http.MethodGet, "/api/contact/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteContactMessage(ctx context.Context, id string) error {
	return c.doRequest(ctx, http.MethodDelete, "/api/contact/"+id, nil, nil)
}
