package server

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// RequireBasicAuthRole gates a route behind basic auth with one of the
// given roles. Credentials come from configuration; passwords are
// compared against stored bcrypt hashes.
func (s *Server) RequireBasicAuthRole(roles ...string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok {
				unauthorized(w)
				return
			}

			for _, user := range s.config.GetBasicAuthUsers() {
				if user.Username != username {
					continue
				}
				if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
					break
				}
				for _, role := range roles {
					if user.Role == role {
						next(w, r)
						return
					}
				}
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			unauthorized(w)
		}
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="spaproxy"`)
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}
