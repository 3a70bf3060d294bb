package models

import (
	"strings"
	"time"
)

// Project is a showcased portfolio work item. Projects are seeded by the
// operator and are read-only through the public API.
type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TechStack   string    `json:"tech_stack"` // comma-separated labels
	DateCreated time.Time `json:"date_created"`
	GithubURL   *string   `json:"github_url"`
	DemoURL     *string   `json:"demo_url"`
	ImageURL    *string   `json:"image_url"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
}

func (p *Project) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrProjectTitleRequired
	}
	if strings.TrimSpace(p.Description) == "" {
		return ErrProjectDescriptionRequired
	}
	if p.DateCreated.IsZero() {
		return ErrProjectDateRequired
	}
	return nil
}

// Technologies splits the comma-joined tech stack field into an ordered
// slice. An empty field yields an empty slice, never one empty string.
func (p *Project) Technologies() []string {
	if p.TechStack == "" {
		return []string{}
	}
	return strings.Split(p.TechStack, ",")
}

// Common errors
var (
	ErrProjectTitleRequired       = &ValidationError{Field: "title", Message: "Project title is required"}
	ErrProjectDescriptionRequired = &ValidationError{Field: "description", Message: "Project description is required"}
	ErrProjectDateRequired        = &ValidationError{Field: "date_created", Message: "Project creation date is required"}
)
