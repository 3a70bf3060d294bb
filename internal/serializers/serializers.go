// Package serializers maps stored records onto their JSON wire
// representations: delimited fields become ordered slices, dates and
// timestamps take a fixed textual form, and absent optional fields are
// rendered as explicit nulls.
package serializers

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/jaiyan-th/portfolio/internal/models"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

// ProjectRepresentation is the JSON shape of a stored project
type ProjectRepresentation struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack"`
	DateCreated *string  `json:"date_created"`
	GithubURL   *string  `json:"github_url"`
	DemoURL     *string  `json:"demo_url"`
	ImageURL    *string  `json:"image_url"`
	Featured    bool     `json:"featured"`
	CreatedAt   *string  `json:"created_at"`
}

// SkillRepresentation is the JSON shape of a stored skill
type SkillRepresentation struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	ProficiencyLevel int     `json:"proficiency_level"`
	IconClass        *string `json:"icon_class"`
	CreatedAt        *string `json:"created_at"`
}

// ContactMessageRepresentation is the JSON shape of a stored contact message
type ContactMessageRepresentation struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Subject    string  `json:"subject"`
	Message    string  `json:"message"`
	IPAddress  *string `json:"ip_address"`
	CreatedAt  *string `json:"created_at"`
	ReadStatus bool    `json:"read_status"`
}

// SerializeProject converts a project into its representation
func SerializeProject(project *models.Project) ProjectRepresentation {
	return ProjectRepresentation{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		TechStack:   project.Technologies(),
		DateCreated: formatDate(project.DateCreated),
		GithubURL:   project.GithubURL,
		DemoURL:     project.DemoURL,
		ImageURL:    project.ImageURL,
		Featured:    project.Featured,
		CreatedAt:   formatTimestamp(project.CreatedAt),
	}
}

// SerializeProjects converts a slice of projects, preserving order. An empty
// input yields an empty slice so the JSON array is never null.
func SerializeProjects(projects []*models.Project) []ProjectRepresentation {
	result := make([]ProjectRepresentation, 0, len(projects))
	for _, project := range projects {
		result = append(result, SerializeProject(project))
	}
	return result
}

// SerializeSkill converts a skill into its representation
func SerializeSkill(skill *models.Skill) SkillRepresentation {
	return SkillRepresentation{
		ID:               skill.ID,
		Name:             skill.Name,
		Category:         skill.Category,
		ProficiencyLevel: skill.ProficiencyLevel,
		IconClass:        skill.IconClass,
		CreatedAt:        formatTimestamp(skill.CreatedAt),
	}
}

// SkillGroups partitions skills by category. It remembers the order in
// which categories were first seen, and marshals as a JSON object whose
// keys follow that order rather than the map's.
type SkillGroups struct {
	order  []string
	groups map[string][]SkillRepresentation
}

// Categories lists the group keys in first-seen order
func (g SkillGroups) Categories() []string {
	return g.order
}

// Get returns the skills in one category, insertion order preserved
func (g SkillGroups) Get(category string) []SkillRepresentation {
	return g.groups[category]
}

// Len reports the number of groups
func (g SkillGroups) Len() int {
	return len(g.order)
}

func (g SkillGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, category := range g.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		group, err := json.Marshal(g.groups[category])
		if err != nil {
			return nil, err
		}
		buf.Write(group)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// SerializeSkillsByCategory partitions skills into category groups. Groups
// are created lazily in first-seen order; every skill lands in exactly the
// group its category names.
func SerializeSkillsByCategory(skills []*models.Skill) SkillGroups {
	grouped := SkillGroups{groups: make(map[string][]SkillRepresentation)}
	for _, skill := range skills {
		if _, seen := grouped.groups[skill.Category]; !seen {
			grouped.order = append(grouped.order, skill.Category)
		}
		grouped.groups[skill.Category] = append(grouped.groups[skill.Category], SerializeSkill(skill))
	}
	return grouped
}

// SerializeContactMessage converts a contact message into its representation
func SerializeContactMessage(message *models.ContactMessage) ContactMessageRepresentation {
	return ContactMessageRepresentation{
		ID:         message.ID,
		Name:       message.Name,
		Email:      message.Email,
		Subject:    message.Subject,
		Message:    message.Message,
		IPAddress:  message.IPAddress,
		CreatedAt:  formatTimestamp(message.CreatedAt),
		ReadStatus: message.ReadStatus,
	}
}

func formatDate(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func formatTimestamp(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(timestampLayout)
	return &s
}
