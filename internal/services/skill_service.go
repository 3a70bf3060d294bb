package services

import (
	"github.com/jaiyan-th/portfolio/internal/models"
	"github.com/jaiyan-th/portfolio/internal/repositories"
	"github.com/jaiyan-th/portfolio/internal/serializers"
)

type SkillService struct {
	skillRepo *repositories.SkillRepository
}

func NewSkillService(skillRepo *repositories.SkillRepository) *SkillService {
	return &SkillService{
		skillRepo: skillRepo,
	}
}

// CreateSkill creates a new skill. Only the seeder calls this; the public
// API never writes skills.
func (s *SkillService) CreateSkill(skill *models.Skill) error {
	// Validate skill
	if err := skill.Validate(); err != nil {
		return err
	}

	// Default proficiency when unspecified
	if skill.ProficiencyLevel == 0 {
		skill.ProficiencyLevel = 1
	}

	return s.skillRepo.Create(skill)
}

// GetSkillsByCategory retrieves all skills grouped by their category tag.
// Categories are an open set, so whatever tags exist in storage become the
// groups.
func (s *SkillService) GetSkillsByCategory() (serializers.SkillGroups, error) {
	skills, err := s.skillRepo.GetAll()
	if err != nil {
		return serializers.SkillGroups{}, err
	}

	return serializers.SerializeSkillsByCategory(skills), nil
}
