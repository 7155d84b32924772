package core

import "testing"

func TestNormalizeID(t *testing.T) {
	cases := map[string]string{
		" Abc ":  "abc",
		"abc":    "abc",
		"M-001":  "m-001",
		"  ":     "",
	}
	for in, want := range cases {
		if got := NormalizeID(in); got != want {
			t.Errorf("NormalizeID(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMemberValidate(t *testing.T) {
	good := Member{ID: "m1", Name: "Mario", Status: StatusActive, MonthlyFee: 2000, Role: RoleMember}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Member{
		{ID: "", Name: "x", Status: StatusActive, Role: RoleMember},
		{ID: "m", Name: "", Status: StatusActive, Role: RoleMember},
		{ID: "m", Name: "x", Status: "Paused", Role: RoleMember},
		{ID: "m", Name: "x", Status: StatusActive, Role: "owner"},
		{ID: "m", Name: "x", Status: StatusActive, Role: RoleMember, MonthlyFee: -1},
		{ID: "m", Name: "x", Status: StatusActive, Role: RoleMember, AbsenceFee: -1},
	}
	for i, m := range bads {
		if err := m.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestFindMember(t *testing.T) {
	members := []Member{{ID: " M1 ", Name: "Mario"}}
	if m, ok := FindMember(members, "m1"); !ok || m.Name != "Mario" {
		t.Fatalf("expected match, got ok=%v m=%+v", ok, m)
	}
	if _, ok := FindMember(members, ""); ok {
		t.Fatalf("empty id must not match")
	}
	if _, ok := FindMember(members, "m2"); ok {
		t.Fatalf("unknown id must not match")
	}
}

func TestParseDateAndISO(t *testing.T) {
	d, err := ParseDate("2025-01-15")
	if err != nil || d.ISO() != "2025-01-15" {
		t.Fatalf("unexpected: d=%v err=%v", d, err)
	}
	if _, err := ParseDate("15/01/2025"); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
	if (Date{}).ISO() != "" {
		t.Fatalf("zero date must render empty")
	}
}
