package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"exec-dashboard-go/internal/dates"
	"exec-dashboard-go/internal/logger"
	"exec-dashboard-go/internal/types"
)

// ErrHeaderNotFound means no row in the sheet satisfied the required
// header markers. This aborts the load; there is no partial result.
var ErrHeaderNotFound = errors.New("header row not found")

// Required markers for header detection. A row qualifies when every
// marker has some cell whose lower-cased trimmed text starts with it,
// which tolerates title rows above the header and phrasing drift like
// "Assigned To: Full Name".
var (
	callMarkers  = []string{"date", "activity type", "assigned"}
	emailMarkers = []string{"assigned", "date"}
)

// Header synonym tables. Sheet revisions rename columns, so several
// spellings map to the same logical field; an unmatched column is ignored.
var callColumns = map[string]string{
	"date":                   "date",
	"activity type":          "activityType",
	"subject":                "subject",
	"assigned to":            "assignedTo",
	"assigned to: full name": "assignedTo",
	"assigned to full name":  "assignedTo",
	"account":                "accountName",
	"account: account name":  "accountName",
	"account name":           "accountName",
	"related to":             "relatedTo",
	"related to: name":       "relatedTo",
	"topic":                  "topic",
	"outcome":                "outcome",
}

var emailColumns = map[string]string{
	"date":              "date",
	"assigned":          "assignedTo",
	"activity type":     "activityType",
	"company / account": "companyAccount",
	"company/ account":  "companyAccount",
	"company /account":  "companyAccount",
	"company/account":   "companyAccount",
	"company":           "companyAccount",
	"account":           "companyAccount",
	"opportunity":       "opportunity",
	"contact":           "contact",
	"lead":              "lead",
	"subject":           "subject",
	"priority":          "priority",
	"status":            "status",
	"task":              "task",
	"task subtype":      "taskSubtype",
}

// LoadCalls reads the call activity workbook into normalized records.
func LoadCalls(path string) ([]types.CallRecord, error) {
	log := logger.New().WithField("component", "dataset.calls").WithField("path", path)
	rows, err := readFirstSheet(path)
	if err != nil {
		log.WithError(err).Error("workbook read failed")
		return nil, err
	}
	headerIdx := findHeaderIndex(rows, callMarkers)
	if headerIdx < 0 {
		log.Error("no header row matched the call markers")
		return nil, fmt.Errorf("%w in %s", ErrHeaderNotFound, path)
	}
	fields := mapColumns(rows[headerIdx], callColumns)

	var out []types.CallRecord
	for _, row := range rows[headerIdx+1:] {
		if blankRow(row) {
			continue
		}
		var rec types.CallRecord
		for col := 0; col < len(rows[headerIdx]); col++ {
			field, ok := fields[col]
			if !ok {
				continue
			}
			val := cellAt(row, col)
			switch field {
			case "date":
				rec.Date = resolveDate(val)
			case "activityType":
				rec.ActivityType = val
			case "subject":
				rec.Subject = val
			case "assignedTo":
				rec.AssignedTo = val
			case "accountName":
				rec.AccountName = val
			case "relatedTo":
				rec.RelatedTo = val
			case "topic":
				rec.Topic = val
			case "outcome":
				rec.Outcome = val
			}
		}
		if rec.Date == "" {
			continue
		}
		out = append(out, rec)
	}
	log.WithField("records", len(out)).WithField("header_row", headerIdx).Info("calls loaded")
	return out, nil
}

// LoadEmails reads the email activity workbook into normalized records.
func LoadEmails(path string) ([]types.EmailRecord, error) {
	log := logger.New().WithField("component", "dataset.emails").WithField("path", path)
	rows, err := readFirstSheet(path)
	if err != nil {
		log.WithError(err).Error("workbook read failed")
		return nil, err
	}
	headerIdx := findHeaderIndex(rows, emailMarkers)
	if headerIdx < 0 {
		log.Error("no header row matched the email markers")
		return nil, fmt.Errorf("%w in %s", ErrHeaderNotFound, path)
	}
	fields := mapColumns(rows[headerIdx], emailColumns)

	var out []types.EmailRecord
	for _, row := range rows[headerIdx+1:] {
		if blankRow(row) {
			continue
		}
		var rec types.EmailRecord
		for col := 0; col < len(rows[headerIdx]); col++ {
			field, ok := fields[col]
			if !ok {
				continue
			}
			val := cellAt(row, col)
			switch field {
			case "date":
				rec.Date = resolveDate(val)
			case "assignedTo":
				rec.AssignedTo = val
			case "activityType":
				rec.ActivityType = val
			case "companyAccount":
				rec.CompanyAccount = val
			case "opportunity":
				rec.Opportunity = val
			case "contact":
				rec.Contact = val
			case "lead":
				rec.Lead = val
			case "subject":
				rec.Subject = val
			case "priority":
				rec.Priority = val
			case "status":
				rec.Status = val
			case "task":
				rec.Task = val
			case "taskSubtype":
				rec.TaskSubtype = val
			}
		}
		if rec.Date == "" {
			continue
		}
		out = append(out, rec)
	}
	log.WithField("records", len(out)).WithField("header_row", headerIdx).Info("emails loaded")
	return out, nil
}

func readFirstSheet(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets in %s", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return rows, nil
}

// findHeaderIndex returns the first row where every required marker has a
// cell whose lower-cased trimmed text starts with that marker, or -1.
func findHeaderIndex(rows [][]string, required []string) int {
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = strings.ToLower(strings.TrimSpace(c))
		}
		matched := true
		for _, marker := range required {
			found := false
			for _, c := range cells {
				if strings.HasPrefix(c, marker) {
					found = true
					break
				}
			}
			if !found {
				matched = false
				break
			}
		}
		if matched {
			return i
		}
	}
	return -1
}

// mapColumns matches header cells against the synonym table. When two
// columns map to the same field, the later column wins because the row
// loop assigns in column order.
func mapColumns(header []string, synonyms map[string]string) map[int]string {
	fields := make(map[int]string, len(header))
	for i, cell := range header {
		key := strings.ToLower(strings.TrimSpace(cell))
		if field, ok := synonyms[key]; ok {
			fields[i] = field
		}
	}
	return fields
}

// cellAt tolerates rows shorter than the header; missing cells are empty.
func cellAt(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// resolveDate canonicalizes a raw cell to ISO, trying the UK format first
// and ISO second. Empty means the row carries no usable date.
func resolveDate(s string) string {
	if t, ok := dates.ParseUKDate(s); ok {
		return dates.ToISODate(t)
	}
	if t, ok := dates.ParseISODate(s); ok {
		return dates.ToISODate(t)
	}
	return ""
}
