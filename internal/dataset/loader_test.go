package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, name string, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadCallsDetectsHeaderBelowTitle(t *testing.T) {
	path := writeWorkbook(t, "calls.xlsx", [][]interface{}{
		{"Title"},
		{"Date", "Activity Type", "Assigned To"},
		{"01/02/2026", "Call", "Alice"},
	})

	records, err := LoadCalls(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2026-02-01", records[0].Date)
	assert.Equal(t, "Call", records[0].ActivityType)
	assert.Equal(t, "Alice", records[0].AssignedTo)
}

func TestLoadCallsDropsUnparsableDates(t *testing.T) {
	path := writeWorkbook(t, "calls.xlsx", [][]interface{}{
		{"Date", "Activity Type", "Assigned To", "Outcome"},
		{"01/02/2026", "Call", "Alice", "Connected"},
		{"soon", "Call", "Bob", "Voicemail"},
		{"2026-02-03", "Call", "Carol", "Connected"},
	})

	records, err := LoadCalls(path)
	require.NoError(t, err)
	require.Len(t, records, 2, "the row with an unparsable date is dropped")
	assert.Equal(t, "2026-02-01", records[0].Date)
	assert.Equal(t, "2026-02-03", records[1].Date, "ISO dates pass the second-stage parser")
}

func TestLoadCallsHeaderNotFound(t *testing.T) {
	path := writeWorkbook(t, "calls.xlsx", [][]interface{}{
		{"Some", "Random", "Columns"},
		{"1", "2", "3"},
	})

	_, err := LoadCalls(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHeaderNotFound)
}

func TestLoadCallsSynonymMapping(t *testing.T) {
	path := writeWorkbook(t, "calls.xlsx", [][]interface{}{
		{"Date", "Activity Type", "Assigned To: Full Name", "Account: Account Name", "Related To: Name"},
		{"05/01/2026", "Call", "Alice", "Acme Ltd", "Renewal"},
	})

	records, err := LoadCalls(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Alice", records[0].AssignedTo)
	assert.Equal(t, "Acme Ltd", records[0].AccountName)
	assert.Equal(t, "Renewal", records[0].RelatedTo)
}

func TestLoadCallsDuplicateColumnsLastWins(t *testing.T) {
	path := writeWorkbook(t, "calls.xlsx", [][]interface{}{
		{"Date", "Activity Type", "Assigned To", "Topic", "Topic"},
		{"01/02/2026", "Call", "Alice", "First", "Second"},
	})

	records, err := LoadCalls(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Second", records[0].Topic)
}

func TestLoadCallsToleratesShortAndBlankRows(t *testing.T) {
	path := writeWorkbook(t, "calls.xlsx", [][]interface{}{
		{"Date", "Activity Type", "Assigned To", "Outcome"},
		{"01/02/2026", "Call"},
		{},
		{"", "", ""},
		{"02/02/2026", "Call", "Bob", "Connected"},
	})

	records, err := LoadCalls(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "", records[0].AssignedTo, "missing cells default to empty")
	assert.Equal(t, "", records[0].Outcome)
	assert.Equal(t, "Bob", records[1].AssignedTo)
}

func TestLoadEmails(t *testing.T) {
	path := writeWorkbook(t, "emails.xlsx", [][]interface{}{
		{"Assigned", "Date", "Company / Account", "Subject", "Status", "Task Subtype"},
		{"Dana", "03/02/2026", "Acme Ltd", "Quote follow-up", "Completed", "Email"},
		{"Evan", "bad date", "Beta Inc", "Intro", "Open", "Email"},
	})

	records, err := LoadEmails(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Dana", records[0].AssignedTo)
	assert.Equal(t, "2026-02-03", records[0].Date)
	assert.Equal(t, "Acme Ltd", records[0].CompanyAccount)
	assert.Equal(t, "Completed", records[0].Status)
	assert.Equal(t, "Email", records[0].TaskSubtype)
}

func TestLoadEmailsHeaderNotFound(t *testing.T) {
	path := writeWorkbook(t, "emails.xlsx", [][]interface{}{
		{"Subject", "Status"},
		{"hello", "Open"},
	})

	_, err := LoadEmails(path)
	assert.ErrorIs(t, err, ErrHeaderNotFound)
}

func TestStoreLoadsOnceAndSticksErrors(t *testing.T) {
	path := writeWorkbook(t, "calls.xlsx", [][]interface{}{
		{"Date", "Activity Type", "Assigned To"},
		{"01/02/2026", "Call", "Alice"},
	})
	store := NewStore(path, filepath.Join(t.TempDir(), "missing.xlsx"))

	first, err := store.Calls()
	require.NoError(t, err)
	second, err := store.Calls()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = store.Emails()
	require.Error(t, err)
	_, again := store.Emails()
	assert.Equal(t, err, again, "load errors are sticky")
}
