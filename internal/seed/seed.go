// Package seed populates the portfolio database with its initial projects
// and skills.
package seed

import (
	"time"

	"github.com/jaiyan-th/portfolio/internal/models"
	"github.com/jaiyan-th/portfolio/internal/repositories"
	"github.com/jaiyan-th/portfolio/internal/services"
)

// Summary reports what the seeder inserted
type Summary struct {
	Projects int
	Skills   int
}

// Run clears existing projects and skills and inserts the sample data.
// Contact messages are left alone unless reset is set.
func Run(projectRepo *repositories.ProjectRepository, skillRepo *repositories.SkillRepository, contactRepo *repositories.ContactMessageRepository, reset bool) (*Summary, error) {
	if err := projectRepo.DeleteAll(); err != nil {
		return nil, err
	}
	if err := skillRepo.DeleteAll(); err != nil {
		return nil, err
	}
	// Contact history survives a plain seed
	if reset {
		if err := contactRepo.DeleteAll(); err != nil {
			return nil, err
		}
	}

	projectService := services.NewProjectService(projectRepo)
	skillService := services.NewSkillService(skillRepo)

	projects := sampleProjects()
	for _, project := range projects {
		if err := projectService.CreateProject(project); err != nil {
			return nil, err
		}
	}

	skills := sampleSkills()
	for _, skill := range skills {
		if err := skillService.CreateSkill(skill); err != nil {
			return nil, err
		}
	}

	return &Summary{Projects: len(projects), Skills: len(skills)}, nil
}

func sampleProjects() []*models.Project {
	return []*models.Project{
		{
			Title:       "Fake News Detection Web App",
			Description: "A machine learning-powered web application that analyzes news articles and determines their authenticity using advanced NLP techniques and scikit-learn algorithms. Features real-time analysis, confidence scoring, and detailed explanations of detection criteria.",
			TechStack:   "Flask,Python,Scikit-learn,MongoDB,HTML,CSS,JavaScript",
			DateCreated: time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC),
			GithubURL:   strPtr("https://github.com/jaiyan-th/fake-news-detector"),
			ImageURL:    strPtr("/static/images/fake-news-project.jpg"),
			Featured:    true,
		},
		{
			Title:       "SecureDesk - Notes & Password Manager",
			Description: "A comprehensive desktop application for secure note-taking and password management. Features AES encryption, secure password generation, organized categorization, and cross-platform compatibility with a clean, intuitive interface.",
			TechStack:   "Flask,HTML,CSS,JavaScript,SQLite,Encryption",
			DateCreated: time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
			GithubURL:   strPtr("https://github.com/jaiyan-th/securedesk"),
			ImageURL:    strPtr("/static/images/securedesk-project.jpg"),
			Featured:    true,
		},
	}
}

func sampleSkills() []*models.Skill {
	return []*models.Skill{
		{Name: "Python", Category: "programming", ProficiencyLevel: 4, IconClass: strPtr("fab fa-python")},
		{Name: "HTML/CSS", Category: "programming", ProficiencyLevel: 4, IconClass: strPtr("fab fa-html5")},
		{Name: "JavaScript", Category: "programming", ProficiencyLevel: 3, IconClass: strPtr("fab fa-js-square")},
		{Name: "Java (Basics)", Category: "programming", ProficiencyLevel: 2, IconClass: strPtr("fab fa-java")},
		{Name: "Excel", Category: "tools", ProficiencyLevel: 4, IconClass: strPtr("fas fa-file-excel")},
		{Name: "Word", Category: "tools", ProficiencyLevel: 4, IconClass: strPtr("fas fa-file-word")},
		{Name: "Canva", Category: "tools", ProficiencyLevel: 3, IconClass: strPtr("fas fa-palette")},
		{Name: "AI Studio", Category: "tools", ProficiencyLevel: 3, IconClass: strPtr("fas fa-robot")},
		{Name: "SQL", Category: "learning", ProficiencyLevel: 2, IconClass: strPtr("fas fa-database")},
		{Name: "AI Tools", Category: "learning", ProficiencyLevel: 2, IconClass: strPtr("fas fa-brain")},
		{Name: "Full-Stack Development", Category: "learning", ProficiencyLevel: 2, IconClass: strPtr("fas fa-code")},
	}
}

func strPtr(s string) *string {
	return &s
}
