package submissions

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"Backend-BenefitsIntake/src/models"
)

var csvHeader = []string{
	"Reference Number",
	"Name",
	"Email",
	"Phone Number",
	"SSN",
	"Gender",
	"Birth City",
	"Mother's Full Name",
	"Father's Full Name",
	"Mother's Maiden Name",
	"Past Due Amount",
	"Driver's License Front",
	"Driver's License Back",
	"Created At",
}

// ExportCSV renders the given (already filtered) set as CSV: the fixed header
// row, then one row per submission. Quoting follows RFC 4180, missing values
// come out as empty cells and timestamps as ISO-8601.
func ExportCSV(submissions []models.Submission) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}

	for _, s := range submissions {
		row := []string{
			s.ReferenceNumber,
			s.Name,
			s.Email,
			s.PhoneNumber,
			s.SSN,
			s.Gender,
			s.BirthCity,
			s.MotherFullName,
			s.FatherFullName,
			s.MotherMaidenName,
			s.PastDueAmount,
			s.DriverLicenseFront,
			s.DriverLicenseBack,
			s.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ExportFilename names the download with the export timestamp embedded.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("survey-submissions-%s.csv", now.Format("2006-01-02-150405"))
}
