package models

import (
	"strings"
	"time"
)

// Skill is a competency entry. The category set is open-ended: whatever tag
// the seed data carries ("programming", "tools", "learning", ...) becomes a
// group on read, no validation against a known list.
type Skill struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	ProficiencyLevel int       `json:"proficiency_level"` // 1-5 scale
	IconClass        *string   `json:"icon_class"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewSkill creates a Skill with the default proficiency level of 1.
func NewSkill(name, category string) *Skill {
	return &Skill{
		Name:             name,
		Category:         category,
		ProficiencyLevel: 1,
	}
}

func (s *Skill) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrSkillNameRequired
	}
	if strings.TrimSpace(s.Category) == "" {
		return ErrSkillCategoryRequired
	}
	return nil
}

// Common errors
var (
	ErrSkillNameRequired     = &ValidationError{Field: "name", Message: "Skill name is required"}
	ErrSkillCategoryRequired = &ValidationError{Field: "category", Message: "Skill category is required"}
)
