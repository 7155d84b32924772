package export

import (
	"bytes"
	"fmt"

	"feetrack/internal/core"
	"feetrack/internal/store"

	"github.com/xuri/excelize/v2"
)

// BuildWorkbook renders the full read-model as an xlsx workbook: the raw
// Members and Fees tables plus the two aggregate sheets. Passwords are not
// exported.
func BuildWorkbook(members []core.Member, fees []core.FeeRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeMembersSheet(f, members); err != nil {
		return nil, err
	}
	if err := writeFeesSheet(f, fees); err != nil {
		return nil, err
	}
	if err := writePeriodSheet(f, core.SummarizeByPeriod(members, fees)); err != nil {
		return nil, err
	}
	if err := writeMemberSummarySheet(f, core.SummarizeByMember(members, fees)); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeMembersSheet(f *excelize.File, members []core.Member) error {
	const sheet = store.TabMembers
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	writeRow(f, sheet, 1, []any{"Member ID", "Name", "Contact", "Status", "Absence Fee", "Monthly Fee", "Role"})
	for i, m := range members {
		writeRow(f, sheet, i+2, []any{m.ID, m.Name, m.Contact, string(m.Status), m.AbsenceFee, m.MonthlyFee, string(m.Role)})
	}
	return nil
}

func writeFeesSheet(f *excelize.File, fees []core.FeeRecord) error {
	const sheet = store.TabFees
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("new sheet %s: %w", sheet, err)
	}
	writeRow(f, sheet, 1, []any{"Member ID", "Month", "Paid Amount", "Remaining Due", "Paid On"})
	for i, rec := range fees {
		writeRow(f, sheet, i+2, []any{rec.MemberID, rec.Period, rec.Paid, rec.Due, rec.PaidOn.ISO()})
	}
	return nil
}

func writePeriodSheet(f *excelize.File, periods []core.PeriodSummary) error {
	const sheet = "By Period"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("new sheet %s: %w", sheet, err)
	}
	writeRow(f, sheet, 1, []any{"Month", "Total Fees", "Total Received", "Total Due"})
	for i, p := range periods {
		writeRow(f, sheet, i+2, []any{p.Period, p.TotalExpected, p.TotalReceived, p.TotalDue})
	}
	return nil
}

func writeMemberSummarySheet(f *excelize.File, rows []core.MemberSummary) error {
	const sheet = "By Member"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("new sheet %s: %w", sheet, err)
	}
	writeRow(f, sheet, 1, []any{"Member ID", "Name", "Total Fees", "Total Received", "Total Due"})
	for i, r := range rows {
		writeRow(f, sheet, i+2, []any{r.MemberID, r.Name, r.TotalExpected, r.TotalReceived, r.TotalDue})
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			continue
		}
		// SetCellValue only fails for invalid coordinates, already excluded.
		_ = f.SetCellValue(sheet, cell, v)
	}
}
