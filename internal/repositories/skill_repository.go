package repositories

import (
	"database/sql"
	"time"

	"github.com/jaiyan-th/portfolio/internal/models"
)

type SkillRepository struct {
	db *sql.DB
}

func NewSkillRepository(db *sql.DB) *SkillRepository {
	return &SkillRepository{
		db: db,
	}
}

// Create inserts a new skill and assigns its generated identifier
func (r *SkillRepository) Create(skill *models.Skill) error {
	query := `
		INSERT INTO skills (name, category, proficiency_level, icon_class, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	if skill.ProficiencyLevel == 0 {
		skill.ProficiencyLevel = 1
	}
	if skill.CreatedAt.IsZero() {
		skill.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.Exec(query,
		skill.Name,
		skill.Category,
		skill.ProficiencyLevel,
		skill.IconClass,
		skill.CreatedAt,
	)
	if err != nil {
		return storageErr("insert skill", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storageErr("insert skill", err)
	}
	skill.ID = id

	return nil
}

// GetAll retrieves all skills in insertion order
func (r *SkillRepository) GetAll() ([]*models.Skill, error) {
	query := `
		SELECT id, name, category, proficiency_level, icon_class, created_at
		FROM skills
		ORDER BY id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, storageErr("list skills", err)
	}
	defer rows.Close()

	var skills []*models.Skill
	for rows.Next() {
		skill := &models.Skill{}
		err := rows.Scan(
			&skill.ID,
			&skill.Name,
			&skill.Category,
			&skill.ProficiencyLevel,
			&skill.IconClass,
			&skill.CreatedAt,
		)
		if err != nil {
			return nil, storageErr("scan skill", err)
		}
		skills = append(skills, skill)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("list skills", err)
	}

	return skills, nil
}

// DeleteAll removes every skill row. Used by the seeder for a fresh start.
func (r *SkillRepository) DeleteAll() error {
	_, err := r.db.Exec(`DELETE FROM skills`)
	return storageErr("delete skills", err)
}
