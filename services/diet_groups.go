package services

import "strings"

// DietGroupTable partitions food type codes into sets that are clinically
// interchangeable for meal substitution. The table is plain data: the
// substitution algorithm never hard-codes a group, so adjusting clinical
// equivalences means editing (or injecting) a table, not touching the
// search. Slice order within a group is the search order, which keeps
// substitution choice deterministic.
type DietGroupTable [][]string

// DefaultDietGroups is the hospital's standard partition:
// general/therapeutic, texture-modified, and liquid diets.
var DefaultDietGroups = DietGroupTable{
	{"A1", "A2", "A3", "OP", "RDS-KF", "RDS-G"},
	{"F1", "F1-M", "F1-S", "F2", "F3", "F4", "F4-S", "F5"},
	{"M1", "M2", "M3"},
}

// GroupFor returns the group containing code, or nil when the code belongs
// to no group. Codes outside every group get no automatic substitution —
// their conflicts always go to manual review.
func (t DietGroupTable) GroupFor(code string) []string {
	for _, group := range t {
		for _, c := range group {
			if strings.EqualFold(c, code) {
				return group
			}
		}
	}
	return nil
}
