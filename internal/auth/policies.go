package auth

import (
	"fmt"

	"github.com/casbin/casbin/v2"

	"go-news-app/internal/logger"
)

// Role names used throughout the policy set. Every signed-in user is at
// least an editor; identities listed in the admin config become admins.
const (
	RoleAnonymous = "anonymous"
	RoleEditor    = "editor"
	RoleAdmin     = "admin"
)

// SeedDefaultPolicies ensures that the application has a baseline set of
// authorization rules. It checks if each default policy exists before adding
// it, making the operation idempotent and safe to run on every start.
func SeedDefaultPolicies(e casbin.IEnforcer, log logger.Logger) {
	log.Info("Seeding default authorization policies...")

	policies := [][]string{
		// Anonymous readers get the whole public surface.
		{RoleAnonymous, "/api/articles", "GET"},
		{RoleAnonymous, "/api/articles/*", "GET"},
		{RoleAnonymous, "/api/articles/*", "POST"}, // comments and likes
		{RoleAnonymous, "/api/comments/*", "POST"}, // comment likes
		{RoleAnonymous, "/api/categories", "GET"},
		{RoleAnonymous, "/api/categories/*", "GET"},
		{RoleAnonymous, "/api/search", "GET"},
		{RoleAnonymous, "/api/settings", "GET"},
		{RoleAnonymous, "/robots.txt", "GET"},
		{RoleAnonymous, "/sitemap.xml", "GET"},
		{RoleAnonymous, "/auth/login", "GET"},
		{RoleAnonymous, "/auth/callback", "GET"},
		{RoleAnonymous, "/auth/logout", "GET"},

		// Editors manage content.
		{RoleEditor, "/admin/api/articles", "GET"},
		{RoleEditor, "/admin/api/articles", "POST"},
		{RoleEditor, "/admin/api/articles/*", "GET"},
		{RoleEditor, "/admin/api/articles/*", "PUT"},
		{RoleEditor, "/admin/api/articles/*", "DELETE"},
		{RoleEditor, "/admin/api/media", "POST"},
		{RoleEditor, "/admin/api/media/*", "DELETE"},

		// Admins additionally manage taxonomy, analytics and settings.
		{RoleAdmin, "/admin/api/categories", "GET"},
		{RoleAdmin, "/admin/api/categories", "POST"},
		{RoleAdmin, "/admin/api/categories/*", "PUT"},
		{RoleAdmin, "/admin/api/categories/*", "DELETE"},
		{RoleAdmin, "/admin/api/analytics", "GET"},
		{RoleAdmin, "/admin/api/settings/*", "GET"},
		{RoleAdmin, "/admin/api/settings/*", "PUT"},
	}
	for _, p := range policies {
		if has, _ := e.HasPolicy(p); !has {
			if _, err := e.AddPolicy(p); err != nil {
				log.Error(err, fmt.Sprintf("Failed to add policy %v", p))
			}
		}
	}

	// Role inheritance: editor extends anonymous, admin extends editor.
	inherits := [][2]string{
		{RoleEditor, RoleAnonymous},
		{RoleAdmin, RoleEditor},
	}
	for _, pair := range inherits {
		if has, _ := e.HasRoleForUser(pair[0], pair[1]); !has {
			if _, err := e.AddRoleForUser(pair[0], pair[1]); err != nil {
				log.Error(err, fmt.Sprintf("Failed to add role %s -> %s", pair[0], pair[1]))
			}
		}
	}
	log.Info("Policy seeding complete.")
}
