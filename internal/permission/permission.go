// Package permission is the single source of truth for role-based
// access. Clients do not hardcode a copy; they read the caller's
// permission list from the session endpoint at login.
package permission

// Roles, ordered roughly by how much of the firm they can touch.
const (
	RoleAdmin     = "admin"
	RolePartner   = "partner"
	RoleAssociate = "associate"
	RoleParalegal = "paralegal"
	RoleGuest     = "guest"
)

// Permission names used by handlers and services.
const (
	ProjectsView   = "projects.view"
	ProjectsManage = "projects.manage"
	TicketsView    = "tickets.view"
	TicketsManage  = "tickets.manage"
	MeetingsView   = "meetings.view"
	MeetingsManage = "meetings.manage"
	ArticlesView   = "articles.view"
	ArticlesManage = "articles.manage"
	UsersView      = "users.view"
	UsersManage    = "users.manage"
	EmailSend      = "email.send"
)

var table = map[string][]string{
	RoleAdmin: {
		ProjectsView, ProjectsManage,
		TicketsView, TicketsManage,
		MeetingsView, MeetingsManage,
		ArticlesView, ArticlesManage,
		UsersView, UsersManage,
		EmailSend,
	},
	RolePartner: {
		ProjectsView, ProjectsManage,
		TicketsView, TicketsManage,
		MeetingsView, MeetingsManage,
		ArticlesView, ArticlesManage,
		UsersView,
		EmailSend,
	},
	RoleAssociate: {
		ProjectsView,
		TicketsView, TicketsManage,
		MeetingsView, MeetingsManage,
		ArticlesView, ArticlesManage,
		UsersView,
	},
	RoleParalegal: {
		ProjectsView,
		TicketsView, TicketsManage,
		MeetingsView,
		ArticlesView,
		UsersView,
	},
	RoleGuest: {
		ProjectsView,
		TicketsView,
		ArticlesView,
	},
}

// HasPermission reports whether role may perform perm. Unknown roles
// and unknown permissions are both false.
func HasPermission(role, perm string) bool {
	for _, p := range table[role] {
		if p == perm {
			return true
		}
	}
	return false
}

// PermissionsFor returns a copy of the permission list for role; empty
// for unknown roles.
func PermissionsFor(role string) []string {
	perms := table[role]
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}

// ValidRole reports whether role exists in the table.
func ValidRole(role string) bool {
	_, ok := table[role]
	return ok
}
