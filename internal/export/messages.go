// Package export writes stored contact messages to a spreadsheet for the
// site operator. This is admin tooling; the public API never exposes
// messages.
package export

import (
	"fmt"

	"github.com/jaiyan-th/portfolio/internal/serializers"
	"github.com/jaiyan-th/portfolio/internal/services"
	"github.com/xuri/excelize/v2"
)

var headers = []string{"ID", "Name", "Email", "Subject", "Message", "IP Address", "Received At", "Read"}

// MessagesToExcel writes every stored contact message to an .xlsx workbook
// at the given path and returns the number of exported rows.
func MessagesToExcel(contactService *services.ContactService, path string) (int, error) {
	messages, err := contactService.GetAllMessages()
	if err != nil {
		return 0, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Messages"
	f.SetSheetName("Sheet1", sheet)

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return 0, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return 0, err
		}
	}

	for row, message := range messages {
		repr := serializers.SerializeContactMessage(message)
		values := []interface{}{
			repr.ID,
			repr.Name,
			repr.Email,
			repr.Subject,
			repr.Message,
			derefOr(repr.IPAddress, ""),
			derefOr(repr.CreatedAt, ""),
			repr.ReadStatus,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return 0, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return 0, err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return 0, fmt.Errorf("save workbook: %w", err)
	}

	return len(messages), nil
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
