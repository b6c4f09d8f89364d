package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"custdesk/internal/domain"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &rows[i]))
	}
	path := filepath.Join(t.TempDir(), "customers.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestImportWorkbook(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"name", "birthday", "email", "phone", "address", "preferred_contact"},
		{"Jane Doe", "1990-05-12", "jane@example.com", "555-123-4567", "1 Main St", "Email"},
		{"", "1990-13-40", "bad", "123", "", "Fax"},
		{"John Roe", "1985-11-03", "john@example.com", "+54 (11) 5555-1234", "2 Side St", "Mail"},
	})

	repo := &fakeRepo{}
	uc := &CustomerUC{Customers: repo}

	rep, err := uc.ImportWorkbook(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 3, rep.Total)
	assert.Equal(t, 2, rep.Inserted)
	require.Len(t, rep.Failed, 1)
	assert.Equal(t, 3, rep.Failed[0].Row)
	assert.Len(t, rep.Failed[0].Violations, 6)
	assert.NotEmpty(t, rep.Batch)

	require.Len(t, repo.rows, 2)
	assert.Equal(t, "Jane Doe", repo.rows[0].Name)
	assert.Equal(t, domain.ContactMail, repo.rows[1].PreferredContact)
}

func TestImportWorkbookWithoutHeader(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Jane Doe", "1990-05-12", "jane@example.com", "555-123-4567", "1 Main St", "Email"},
	})

	repo := &fakeRepo{}
	uc := &CustomerUC{Customers: repo}

	rep, err := uc.ImportWorkbook(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Total)
	assert.Equal(t, 1, rep.Inserted)
	assert.Empty(t, rep.Failed)
}

func TestImportWorkbookStorageFailureAborts(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Jane Doe", "1990-05-12", "jane@example.com", "555-123-4567", "1 Main St", "Email"},
		{"John Roe", "1985-11-03", "john@example.com", "555-987-6543", "2 Side St", "Phone"},
	})

	repo := &fakeRepo{insErr: fmt.Errorf("%w: database is locked", domain.ErrStorageUnavailable)}
	uc := &CustomerUC{Customers: repo}

	rep, err := uc.ImportWorkbook(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	// The failing row is counted, nothing after it is attempted.
	require.NotNil(t, rep)
	assert.Equal(t, 1, rep.Total)
	assert.Equal(t, 0, rep.Inserted)
}

func TestImportWorkbookMissingFile(t *testing.T) {
	uc := &CustomerUC{Customers: &fakeRepo{}}
	_, err := uc.ImportWorkbook(context.Background(), filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}
