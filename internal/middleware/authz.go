package middleware

import (
	"net/http"

	"github.com/casbin/casbin/v2"

	"go-news-app/internal/session"
)

// Authorizer creates a new middleware for authorization.
// It checks the user's permissions using Casbin based on session data.
// The enforcement subject is the user's role; signed-in users have their
// role resolved at login and stored in the session.
func Authorizer(e casbin.IEnforcer, sm session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject := sm.GetString(r.Context(), session.KeyUserSubject)
			role := sm.GetString(r.Context(), session.KeyUserRole)
			if subject == "" {
				subject = "anonymous"
			}
			if role == "" {
				role = "anonymous"
			}

			// Add user info to the request context for downstream handlers.
			userInfo := &UserInfo{Subject: subject, Role: role}
			r = r.WithContext(SetUserInfo(r.Context(), userInfo))

			// Use Casbin to enforce the policy.
			allowed, err := e.Enforce(role, r.URL.Path, r.Method)
			if err != nil {
				http.Error(w, "Authorization error", http.StatusInternalServerError)
				return
			}

			if !allowed {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
