package models

import "fmt"

// Role is the cognitive persona assigned once at session start. It
// parameterizes prompt assembly but never changes orchestration logic.
type Role string

const (
	RolePlanner       Role = "planner"
	RoleCoder         Role = "coder"
	RoleCritic        Role = "critic"
	RoleResearcher    Role = "researcher"
	RoleAnalyzer      Role = "analyzer"
	RoleSynthesizer   Role = "synthesizer"
	RoleUIArchitect   Role = "ui_architect"
	RoleUIImplementer Role = "ui_implementer"
	RoleUIRefiner     Role = "ui_refiner"
)

// RolePrecedence is the documented tie-break order for role detection:
// when two roles score equally against an objective, the earlier entry wins.
var RolePrecedence = []Role{
	RolePlanner, RoleCoder, RoleCritic, RoleResearcher, RoleAnalyzer,
	RoleSynthesizer, RoleUIArchitect, RoleUIImplementer, RoleUIRefiner,
}

// IsValid checks whether the role token is a member of the enum.
func (r Role) IsValid() bool {
	switch r {
	case RolePlanner, RoleCoder, RoleCritic, RoleResearcher, RoleAnalyzer,
		RoleSynthesizer, RoleUIArchitect, RoleUIImplementer, RoleUIRefiner:
		return true
	default:
		return false
	}
}

// ParseRole converts a wire token into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role token %q", s)
	}
	return r, nil
}
