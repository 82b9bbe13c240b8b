// Package access maps an authenticated role to the navigation destinations
// it may see and the mutating actions it may perform. It is the single
// source of truth for client-facing authorization; database-level policies
// remain an independent outer enforcement layer.
//
// Every function here is a pure function of its arguments. Role is always
// passed in explicitly so the package stays testable without a live
// session, and so that nothing re-derives "who is acting now" on its own.
package access

import "github.com/Shrihari6/medflow-nova/internal/model"

// Capability is a named permission checked against a role before a
// mutating action is attempted.
type Capability string

const (
	CapabilityCreatePatient Capability = "create_patient"
	CapabilityUpdatePatient Capability = "update_patient"
	CapabilityViewStaff     Capability = "view_staff"
	CapabilityManageSystem  Capability = "manage_system"
)

// MenuItem is one navigation destination visible to a role.
type MenuItem struct {
	Label      string     `json:"label"`
	Route      string     `json:"route"`
	Capability Capability `json:"capability,omitempty"`
}

// ResolveMenu returns the ordered navigation destinations for role.
//
// Patients see exactly one destination, their self-service portal. Every
// other role (including absent or unrecognized roles, which are treated as
// least-privileged) sees the fixed base sequence of overview, patient
// directory and doctor directory. Admins additionally get the staff
// directory and administrative panel appended after the base sequence.
func ResolveMenu(role model.Role) []MenuItem {
	if role == model.RolePatient {
		return []MenuItem{
			{Label: "My Portal", Route: "/patient-portal"},
		}
	}

	items := []MenuItem{
		{Label: "Dashboard", Route: "/dashboard"},
		{Label: "Patients", Route: "/patients"},
		{Label: "Doctors", Route: "/doctors"},
	}

	if role == model.RoleAdmin {
		items = append(items,
			MenuItem{Label: "Staff", Route: "/staff", Capability: CapabilityViewStaff},
			MenuItem{Label: "Admin Panel", Route: "/admin", Capability: CapabilityManageSystem},
		)
	}

	return items
}

// CanPerform reports whether role may exercise the given capability.
// Patients may never create or update clinical records; unknown roles get
// nothing.
func CanPerform(role model.Role, capability Capability) bool {
	switch capability {
	case CapabilityCreatePatient, CapabilityUpdatePatient:
		return role == model.RoleAdmin || role == model.RoleDoctor || role == model.RoleStaff
	case CapabilityViewStaff, CapabilityManageSystem:
		return role == model.RoleAdmin
	}
	return false
}
