package service

import (
	"strings"

	"github.com/osa911/formmailer/internal/api/sanitization"
	"github.com/osa911/formmailer/internal/models"
)

// EmailHeading is the title rendered above the submission table
const EmailHeading = "User Submitted Data on Sahasra Landing Page"

// GenerateHTMLTable renders fields as a bordered two-column HTML table,
// one row per field in the given order.
func GenerateHTMLTable(fields []models.Field) string {
	var rows strings.Builder
	for _, f := range fields {
		rows.WriteString("<tr><td><strong>")
		rows.WriteString(sanitization.SanitizeString(f.Key))
		rows.WriteString("</strong></td><td>")
		rows.WriteString(sanitization.SanitizeString(f.Value))
		rows.WriteString("</td></tr>")
	}

	return "<html>\n<body>\n<h3>" + EmailHeading + "</h3>\n" +
		`<table border="1" cellpadding="5" cellspacing="0">` + "\n" +
		rows.String() +
		"\n</table>\n</body>\n</html>\n"
}
