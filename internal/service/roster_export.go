package service

import (
	"bytes"
	"fmt"
	"time"

	"lenglogs/internal/domain/entity"

	"github.com/xuri/excelize/v2"
)

const rosterSheet = "Patients"

var rosterHeader = []interface{}{
	"Last Name", "First Name", "Date of Birth", "Age", "Gender", "Phone",
	"Care Level", "Mobility", "Medical Conditions", "Allergies", "Medications",
	"Dietary Restrictions", "Emergency Contact", "Emergency Phone", "Relationship",
}

var rosterWidths = []float64{18, 18, 14, 6, 16, 18, 12, 14, 32, 24, 24, 24, 22, 18, 14}

// RosterExporter renders a facility's patient roster as a spreadsheet.
type RosterExporter interface {
	Export(patients []entity.Patient, now time.Time) ([]byte, error)
}

type xlsxRosterExporter struct{}

func NewRosterExporter() RosterExporter {
	return &xlsxRosterExporter{}
}

func (e *xlsxRosterExporter) Export(patients []entity.Patient, now time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", rosterSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetSheetRow(rosterSheet, "A1", &rosterHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(rosterHeader))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(rosterSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}
	for i, width := range rosterWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(rosterSheet, col, col, width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i := range patients {
		p := &patients[i]
		var dob, age interface{}
		if p.DateOfBirth != nil {
			dob = p.DateOfBirth.Format("2006-01-02")
			age = *p.Age(now)
		}
		row := []interface{}{
			p.LastName, p.FirstName, dob, age, p.Gender, p.Phone,
			p.CareLevel, p.MobilityLevel, p.MedicalConditions, p.Allergies, p.Medications,
			p.DietaryRestrictions, p.EmergencyContactName, p.EmergencyContactPhone, p.EmergencyContactRelationship,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(rosterSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(rosterSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze header: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
