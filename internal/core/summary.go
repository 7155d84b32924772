package core

type (
	// PeriodSummary aggregates the ledger for one billing period.
	PeriodSummary struct {
		Period        string
		TotalExpected int64 // sum of joined monthly fees
		TotalReceived int64
		TotalDue      int64
	}

	// MemberSummary aggregates one member's records across all periods.
	MemberSummary struct {
		MemberID      string
		Name          string
		TotalExpected int64
		TotalReceived int64
		TotalDue      int64
	}

	// Totals is the grand total across a set of period summaries.
	Totals struct {
		Expected int64
		Received int64
		Due      int64
	}
)

// SummarizeByPeriod joins fee records to members (left join on normalized
// id) and groups by period in first-seen order. A record whose member no
// longer exists contributes zero to the expected column but keeps its paid
// and due amounts. Periods with no fee records do not appear at all: a
// member who never paid in a period is invisible to that period's row.
func SummarizeByPeriod(members []Member, fees []FeeRecord) []PeriodSummary {
	feeByID := memberFeeIndex(members)

	index := map[string]int{}
	var out []PeriodSummary
	for _, rec := range fees {
		i, ok := index[rec.Period]
		if !ok {
			i = len(out)
			index[rec.Period] = i
			out = append(out, PeriodSummary{Period: rec.Period})
		}
		out[i].TotalExpected += feeByID[NormalizeID(rec.MemberID)]
		out[i].TotalReceived += rec.Paid
		out[i].TotalDue += rec.Due
	}
	return out
}

// SummarizeByMember performs the same join grouped by (id, name), one row
// per member with at least one fee record, cumulative across periods.
func SummarizeByMember(members []Member, fees []FeeRecord) []MemberSummary {
	feeByID := memberFeeIndex(members)
	nameByID := map[string]string{}
	for _, m := range members {
		nameByID[NormalizeID(m.ID)] = m.Name
	}

	index := map[string]int{}
	var out []MemberSummary
	for _, rec := range fees {
		id := NormalizeID(rec.MemberID)
		i, ok := index[id]
		if !ok {
			i = len(out)
			index[id] = i
			out = append(out, MemberSummary{MemberID: rec.MemberID, Name: nameByID[id]})
		}
		out[i].TotalExpected += feeByID[id]
		out[i].TotalReceived += rec.Paid
		out[i].TotalDue += rec.Due
	}
	return out
}

// SumPeriods folds period summaries into grand totals for the dashboard.
func SumPeriods(periods []PeriodSummary) Totals {
	var t Totals
	for _, p := range periods {
		t.Expected += p.TotalExpected
		t.Received += p.TotalReceived
		t.Due += p.TotalDue
	}
	return t
}

func memberFeeIndex(members []Member) map[string]int64 {
	out := make(map[string]int64, len(members))
	for _, m := range members {
		out[NormalizeID(m.ID)] = m.MonthlyFee
	}
	return out
}
