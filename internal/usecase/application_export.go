package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Applications"

var exportHeaders = []string{"APPLICATION ID", "APPLICANT ID", "NAME", "STATUS", "APPLIED AT", "RESUME LINK", "SKILLS"}

// ExportByJobID renders the job's applications as an xlsx workbook. An unknown
// job yields a workbook with only the header row.
func (uc *applicationUsecase) ExportByJobID(ctx context.Context, jobID int64) ([]byte, string, error) {
	apps, err := uc.applicationRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	data, err := applicationsWorkbook(apps)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	filename := fmt.Sprintf("job_%d_applications_%s.xlsx", jobID, time.Now().Format("20060102_150405"))
	return data, filename, nil
}

func applicationsWorkbook(apps []domain.ApplicationWithApplicant) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheet, cell, h)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	endCell, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	f.SetCellStyle(exportSheet, "A1", endCell, headerStyle)

	for rowIdx, app := range apps {
		row := []any{
			app.ID,
			app.ApplicantID,
			app.Name,
			app.Status,
			app.ApplicationDate.Format(time.RFC3339),
			deref(app.ResumeLink),
			deref(app.Skills),
		}
		cell, _ := excelize.CoordinatesToCellName(1, rowIdx+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	for i := range exportHeaders {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(exportSheet, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
