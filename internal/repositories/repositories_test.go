package repositories

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jaiyan-th/portfolio/internal/models"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	schema, err := os.ReadFile(filepath.Join("..", "..", "migrations", "001_create_tables.sql"))
	require.NoError(t, err)
	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	return db
}

func testProject(title string, featured bool) *models.Project {
	return &models.Project{
		Title:       title,
		Description: "Description of " + title,
		TechStack:   "Go,SQLite",
		DateCreated: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Featured:    featured,
	}
}

func TestProjectRepositoryCreate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	t.Run("Assigns monotonic identifiers", func(t *testing.T) {
		first := testProject("First", false)
		second := testProject("Second", true)

		require.NoError(t, repo.Create(first))
		require.NoError(t, repo.Create(second))

		assert.Greater(t, first.ID, int64(0))
		assert.Greater(t, second.ID, first.ID)
	})

	t.Run("Sets insertion timestamp", func(t *testing.T) {
		project := testProject("Timestamped", false)
		require.NoError(t, repo.Create(project))
		assert.False(t, project.CreatedAt.IsZero())
	})
}

func TestProjectRepositoryGetAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	github := "https://github.com/jaiyan-th/example"
	project := testProject("Round Trip", true)
	project.GithubURL = &github
	require.NoError(t, repo.Create(project))
	require.NoError(t, repo.Create(testProject("Second", false)))

	t.Run("Returns insertion order", func(t *testing.T) {
		projects, err := repo.GetAll()
		require.NoError(t, err)
		require.Len(t, projects, 2)
		assert.Equal(t, "Round Trip", projects[0].Title)
		assert.Equal(t, "Second", projects[1].Title)
	})

	t.Run("Round-trips stored attributes", func(t *testing.T) {
		projects, err := repo.GetAll()
		require.NoError(t, err)

		stored := projects[0]
		assert.Equal(t, "Go,SQLite", stored.TechStack)
		require.NotNil(t, stored.GithubURL)
		assert.Equal(t, github, *stored.GithubURL)
		assert.Nil(t, stored.DemoURL)
		assert.True(t, stored.Featured)
		assert.Equal(t, "2025-01-01", stored.DateCreated.Format("2006-01-02"))
	})

	t.Run("Repeated reads are identical", func(t *testing.T) {
		first, err := repo.GetAll()
		require.NoError(t, err)
		second, err := repo.GetAll()
		require.NoError(t, err)

		require.Equal(t, len(first), len(second))
		for i := range first {
			assert.Equal(t, first[i].ID, second[i].ID)
		}
	})
}

func TestProjectRepositoryGetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	created := testProject("Lookup", true)
	require.NoError(t, repo.Create(created))

	t.Run("Returns the stored project", func(t *testing.T) {
		project, err := repo.GetByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, project.ID)
		assert.Equal(t, "Lookup", project.Title)
		assert.Equal(t, "Go,SQLite", project.TechStack)
	})

	t.Run("Missing row yields ErrNotFound", func(t *testing.T) {
		_, err := repo.GetByID(created.ID + 100)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)

		var storageError *StorageError
		assert.False(t, errors.As(err, &storageError))
	})
}

func TestProjectRepositoryGetFeatured(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	require.NoError(t, repo.Create(testProject("Plain 1", false)))
	require.NoError(t, repo.Create(testProject("Featured 1", true)))
	require.NoError(t, repo.Create(testProject("Plain 2", false)))
	require.NoError(t, repo.Create(testProject("Featured 2", true)))

	featured, err := repo.GetFeatured()
	require.NoError(t, err)

	// Exactly the featured subset, preserving relative order
	require.Len(t, featured, 2)
	assert.Equal(t, "Featured 1", featured[0].Title)
	assert.Equal(t, "Featured 2", featured[1].Title)
	for _, project := range featured {
		assert.True(t, project.Featured)
	}
}

func TestSkillRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSkillRepository(db)

	t.Run("Defaults proficiency to 1", func(t *testing.T) {
		skill := &models.Skill{Name: "SQL", Category: "learning"}
		require.NoError(t, repo.Create(skill))

		skills, err := repo.GetAll()
		require.NoError(t, err)
		require.Len(t, skills, 1)
		assert.Equal(t, 1, skills[0].ProficiencyLevel)
	})

	t.Run("Stores explicit proficiency", func(t *testing.T) {
		skill := &models.Skill{Name: "Python", Category: "programming", ProficiencyLevel: 4}
		require.NoError(t, repo.Create(skill))

		skills, err := repo.GetAll()
		require.NoError(t, err)
		assert.Equal(t, 4, skills[len(skills)-1].ProficiencyLevel)
	})

	t.Run("Returns insertion order", func(t *testing.T) {
		skills, err := repo.GetAll()
		require.NoError(t, err)
		require.Len(t, skills, 2)
		assert.Equal(t, "SQL", skills[0].Name)
		assert.Equal(t, "Python", skills[1].Name)
	})
}

func TestContactMessageRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactMessageRepository(db)

	t.Run("Persists a full submission", func(t *testing.T) {
		ip := "198.51.100.4"
		message := &models.ContactMessage{
			Name:      "John Doe",
			Email:     "john@example.com",
			Subject:   "Hello",
			Message:   "Test message",
			IPAddress: &ip,
		}
		require.NoError(t, repo.Create(message))
		assert.Greater(t, message.ID, int64(0))

		count, err := repo.Count()
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		messages, err := repo.GetAll()
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Equal(t, "John Doe", messages[0].Name)
		assert.Equal(t, "john@example.com", messages[0].Email)
		require.NotNil(t, messages[0].IPAddress)
		assert.Equal(t, ip, *messages[0].IPAddress)
		assert.False(t, messages[0].ReadStatus)
	})

	t.Run("Nil origin address stays null", func(t *testing.T) {
		message := &models.ContactMessage{
			Name:    "Jane",
			Email:   "jane@example.com",
			Message: "Another message",
		}
		require.NoError(t, repo.Create(message))

		messages, err := repo.GetAll()
		require.NoError(t, err)
		assert.Nil(t, messages[len(messages)-1].IPAddress)
	})
}

func TestStorageErrorOnClosedDatabase(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	require.NoError(t, db.Close())

	_, err := repo.GetAll()
	require.Error(t, err)

	var storageError *StorageError
	assert.ErrorAs(t, err, &storageError)
}
