package store

import "testing"

func TestClassifyHeader(t *testing.T) {
	expected := []string{"A", "B", "C"}
	cases := []struct {
		existing []string
		want     HeaderAction
	}{
		{[]string{"A", "B", "C"}, HeaderMatches},
		{[]string{"A", "B"}, HeaderExtend},
		{[]string{}, HeaderExtend},
		{[]string{"A", "X", "C"}, HeaderDrift},
		{[]string{"B", "A", "C"}, HeaderDrift},
		{[]string{"A", "B", "C", "D"}, HeaderDrift},
	}
	for i, tc := range cases {
		if got := ClassifyHeader(tc.existing, expected); got != tc.want {
			t.Errorf("case %d: got %v, want %v", i, got, tc.want)
		}
	}
}

func TestRequiredTabsCoversAllTabs(t *testing.T) {
	tabs := RequiredTabs()
	for _, name := range []string{TabMembers, TabFees, TabAttendance} {
		if len(tabs[name]) == 0 {
			t.Fatalf("missing header for %s", name)
		}
	}
}
