package webshell

import "net/http"

// Route guards. The pages behind them assume a full session; the guards are
// the only place that decision is made.

// requireAuth sends anonymous visitors to the login screen, remembering
// where they were headed.
func (h *Handlers) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.Sessions.IsAuthenticated() {
			http.Redirect(w, r, "/login?next="+r.URL.Path, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAdmin additionally checks the role; a signed-in guest gets a 403
// page rather than a login redirect.
func (h *Handlers) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.Sessions.IsAuthenticated() {
			http.Redirect(w, r, "/login?next="+r.URL.Path, http.StatusSeeOther)
			return
		}
		if !h.Sessions.IsAdmin() {
			h.renderError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
