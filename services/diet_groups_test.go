package services

import "testing"

func TestDefaultDietGroupsArePartition(t *testing.T) {
	seen := make(map[string]bool)
	for _, group := range DefaultDietGroups {
		if len(group) == 0 {
			t.Fatal("empty group in table")
		}
		for _, code := range group {
			if seen[code] {
				t.Errorf("code %s appears in more than one group", code)
			}
			seen[code] = true
		}
	}
}

func TestGroupFor(t *testing.T) {
	cases := []struct {
		code     string
		wantCode string // a peer expected in the same group
	}{
		{"A1", "RDS-G"},
		{"M2", "M1"},
		{"F4-S", "F1"},
	}
	for _, c := range cases {
		group := DefaultDietGroups.GroupFor(c.code)
		if group == nil {
			t.Fatalf("GroupFor(%s) = nil, want a group", c.code)
		}
		found := false
		for _, member := range group {
			if member == c.wantCode {
				found = true
			}
		}
		if !found {
			t.Errorf("GroupFor(%s) = %v, expected peer %s", c.code, group, c.wantCode)
		}
	}
}

func TestGroupForUnknownCode(t *testing.T) {
	if got := DefaultDietGroups.GroupFor("X9"); got != nil {
		t.Errorf("GroupFor(X9) = %v, want nil", got)
	}
	if got := DefaultDietGroups.GroupFor(""); got != nil {
		t.Errorf("GroupFor(\"\") = %v, want nil", got)
	}
}

func TestGroupForIsCaseInsensitive(t *testing.T) {
	if got := DefaultDietGroups.GroupFor("a1"); got == nil {
		t.Error("GroupFor(a1) = nil, want the general group")
	}
}
