package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"custdesk/internal/domain"
)

// ImportRow describes one workbook row that failed validation.
type ImportRow struct {
	Row        int // 1-based row number in the sheet
	Violations []string
}

type ImportReport struct {
	Batch    string
	Total    int
	Inserted int
	Failed   []ImportRow
}

// ImportWorkbook reads the first sheet of an .xlsx file and submits each
// row through the same validate-then-insert path as a single form entry.
// Columns are expected in field order: name, birthday, email, phone,
// address, preferred contact. A header row (cell A1 equal to "name") and
// blank rows are skipped. Rows failing validation are reported and
// skipped; a storage failure aborts the import immediately.
func (uc *CustomerUC) ImportWorkbook(ctx context.Context, path string) (*ImportReport, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	rep := &ImportReport{Batch: uuid.New().String()}
	for i, cells := range rows {
		if i == 0 && isHeaderRow(cells) {
			continue
		}
		if blankRow(cells) {
			continue
		}
		rep.Total++
		if _, err := uc.Submit(ctx, rowInput(cells)); err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				rep.Failed = append(rep.Failed, ImportRow{Row: i + 1, Violations: verr.Violations})
				continue
			}
			return rep, err
		}
		rep.Inserted++
	}

	log.Info().
		Str("batch", rep.Batch).
		Int("total", rep.Total).
		Int("inserted", rep.Inserted).
		Int("failed", len(rep.Failed)).
		Msg("workbook import finished")
	return rep, nil
}

func rowInput(cells []string) domain.FormInput {
	get := func(i int) string {
		if i < len(cells) {
			return cells[i]
		}
		return ""
	}
	return domain.FormInput{
		Name:             get(0),
		Birthday:         get(1),
		Email:            get(2),
		Phone:            get(3),
		Address:          get(4),
		PreferredContact: get(5),
	}
}

func isHeaderRow(cells []string) bool {
	return len(cells) > 0 && strings.EqualFold(strings.TrimSpace(cells[0]), "name")
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
