package google

import (
	"fmt"
	"strings"

	"feetrack/internal/core"
)

// The store is schema-loose: cells come back as whatever the API felt like
// that day. Conversion to semantic types happens here, once, so the rest of
// the application never coerces again.

func toStrings(in []any) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return out
}

func cell(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}

func parseMember(cells []string, row int) core.Member {
	return core.Member{
		ID:         cell(cells, 0),
		Name:       cell(cells, 1),
		Contact:    cell(cells, 2),
		Status:     core.MemberStatus(cell(cells, 3)),
		AbsenceFee: core.CoerceInt(cell(cells, 4), 0),
		MonthlyFee: core.CoerceInt(cell(cells, 5), 0),
		Username:   cell(cells, 6),
		Password:   cell(cells, 7),
		Role:       core.Role(cell(cells, 8)),
		Row:        row,
	}
}

func parseFeeRecord(cells []string, row int) core.FeeRecord {
	paidOn, _ := core.ParseDate(cell(cells, 4)) // zero date for blank or junk
	return core.FeeRecord{
		MemberID: cell(cells, 0),
		Period:   cell(cells, 1),
		Paid:     core.CoerceInt(cell(cells, 2), 0),
		Due:      core.CoerceInt(cell(cells, 3), 0),
		PaidOn:   paidOn,
		Row:      row,
	}
}

func memberCells(m core.Member) []any {
	return []any{m.ID, m.Name, m.Contact, string(m.Status), m.AbsenceFee, m.MonthlyFee, m.Username, m.Password, string(m.Role)}
}

func feeCells(rec core.FeeRecord) []any {
	return []any{rec.MemberID, rec.Period, rec.Paid, rec.Due, rec.PaidOn.ISO()}
}
