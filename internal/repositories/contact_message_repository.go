package repositories

import (
	"database/sql"
	"time"

	"github.com/jaiyan-th/portfolio/internal/models"
)

type ContactMessageRepository struct {
	db *sql.DB
}

func NewContactMessageRepository(db *sql.DB) *ContactMessageRepository {
	return &ContactMessageRepository{
		db: db,
	}
}

// Create inserts a new contact message and assigns its generated identifier.
// The single-row insert commits atomically, so a failure leaves no partial
// record visible to later reads.
func (r *ContactMessageRepository) Create(message *models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, subject, message, ip_address, created_at, read_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.Exec(query,
		message.Name,
		message.Email,
		message.Subject,
		message.Message,
		message.IPAddress,
		message.CreatedAt,
		message.ReadStatus,
	)
	if err != nil {
		return storageErr("insert contact message", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storageErr("insert contact message", err)
	}
	message.ID = id

	return nil
}

// GetAll retrieves all contact messages in insertion order. This is operator
// tooling only; no public endpoint exposes it.
func (r *ContactMessageRepository) GetAll() ([]*models.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, message, ip_address, created_at, read_status
		FROM contact_messages
		ORDER BY id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, storageErr("list contact messages", err)
	}
	defer rows.Close()

	var messages []*models.ContactMessage
	for rows.Next() {
		message := &models.ContactMessage{}
		err := rows.Scan(
			&message.ID,
			&message.Name,
			&message.Email,
			&message.Subject,
			&message.Message,
			&message.IPAddress,
			&message.CreatedAt,
			&message.ReadStatus,
		)
		if err != nil {
			return nil, storageErr("scan contact message", err)
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("list contact messages", err)
	}

	return messages, nil
}

// DeleteAll removes every contact message row. Used by the seeder's reset
// mode only.
func (r *ContactMessageRepository) DeleteAll() error {
	_, err := r.db.Exec(`DELETE FROM contact_messages`)
	return storageErr("delete contact messages", err)
}

// Count returns the number of stored contact messages
func (r *ContactMessageRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM contact_messages`).Scan(&count)
	if err != nil {
		return 0, storageErr("count contact messages", err)
	}
	return count, nil
}
