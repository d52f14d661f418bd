package models

// Role is the position held in a timeline entry
type Role string

const (
	RoleSoftwareEngineer   Role = "Software Engineer"
	RoleProductManager     Role = "Product Manager"
	RoleDesigner           Role = "Designer"
	RoleFrontendDeveloper  Role = "Frontend Developer"
	RoleBackendDeveloper   Role = "Backend Developer"
	RoleFullStackDeveloper Role = "Full Stack Developer"
)

// Roles lists every accepted Role in display order
var Roles = []Role{
	RoleSoftwareEngineer,
	RoleProductManager,
	RoleDesigner,
	RoleFrontendDeveloper,
	RoleBackendDeveloper,
	RoleFullStackDeveloper,
}

// Valid reports whether r is one of Roles
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// Experience represents one entry of the career timeline
type Experience struct {
	ID           int64    `json:"id"`
	Company      string   `json:"company"`
	Role         Role     `json:"role"`
	DateRange    string   `json:"dateRange"`
	Technologies []string `json:"technologies"`
	ProjectName  *string  `json:"projectName,omitempty"`
	Details      *string  `json:"details,omitempty"`
}

func (e *Experience) Normalize() {
	if e.Technologies == nil {
		e.Technologies = []string{}
	}
}

func (e Experience) Validate() error {
	if e.Company == "" {
		return missingField("company")
	}
	if !e.Role.Valid() {
		return invalidField("role", "unknown role "+string(e.Role))
	}
	return nil
}
