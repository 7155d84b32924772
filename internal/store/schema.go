package store

// Tab names and header rows as they appear in the spreadsheet. Header
// strings are the wire format; renaming one is a schema migration.
const (
	TabMembers    = "Members"
	TabFees       = "Fees"
	TabAttendance = "Attendance"
)

var (
	MembersHeader    = []string{"Member ID", "Name", "Contact", "Status", "Absence Fee", "Monthly Fee", "Username", "Password", "Role"}
	FeesHeader       = []string{"Member ID", "Month", "Paid Amount", "Remaining Due", "Paid On"}
	AttendanceHeader = []string{"Date", "Member ID", "Status"}
)

// Zero-based column positions inside the Fees tab, used for single-cell
// payment updates.
const (
	FeeColMemberID = iota
	FeeColPeriod
	FeeColPaid
	FeeColDue
	FeeColPaidOn
)

// RequiredTabs returns the full expected schema in provisioning order.
func RequiredTabs() map[string][]string {
	return map[string][]string{
		TabMembers:    MembersHeader,
		TabFees:       FeesHeader,
		TabAttendance: AttendanceHeader,
	}
}

// SchemaReport describes what EnsureSchema did per tab.
type SchemaReport struct {
	Created  []string // tabs created with a fresh header
	Extended []string // tabs whose header was extended additively
	Intact   []string // tabs already matching
}

// HeaderAction classifies an existing header against the expected one.
type HeaderAction int

const (
	HeaderMatches HeaderAction = iota
	HeaderExtend               // existing is a strict prefix: append missing columns
	HeaderDrift                // anything else: refuse, never clear rows
)

// ClassifyHeader compares an existing header row with the expected columns.
func ClassifyHeader(existing, expected []string) HeaderAction {
	if len(existing) > len(expected) {
		return HeaderDrift
	}
	for i, col := range existing {
		if col != expected[i] {
			return HeaderDrift
		}
	}
	if len(existing) == len(expected) {
		return HeaderMatches
	}
	return HeaderExtend
}
