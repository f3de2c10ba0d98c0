package api

import "fmt"

// Routes resolves backend paths. Deployed backends disagree on prefixes
// ("/login" vs "/auth/login", "/users/{id}" vs "/api/users/{id}"), so both
// prefixes are configuration rather than constants. The zero value plus
// DefaultRoutes gives the canonical convention.
type Routes struct {
	// AuthPrefix is prepended to login/register/me.
	AuthPrefix string
	// APIPrefix is prepended to blog and user resources.
	APIPrefix string
}

// DefaultRoutes returns the canonical path convention: auth endpoints under
// /auth, resources at the root.
func DefaultRoutes() Routes {
	return Routes{AuthPrefix: "/auth"}
}

func (r Routes) login() string    { return r.AuthPrefix + "/login" }
func (r Routes) register() string { return r.AuthPrefix + "/register" }
func (r Routes) me() string       { return r.AuthPrefix + "/me" }

func (r Routes) blogs() string { return r.APIPrefix + "/blogs" }

func (r Routes) blog(id int64) string {
	return fmt.Sprintf("%s/blogs/%d", r.APIPrefix, id)
}

func (r Routes) blogLike(id int64) string {
	return fmt.Sprintf("%s/blogs/%d/like", r.APIPrefix, id)
}

func (r Routes) blogComments(id int64) string {
	return fmt.Sprintf("%s/blogs/%d/comments", r.APIPrefix, id)
}

func (r Routes) user(id int64) string {
	return fmt.Sprintf("%s/users/%d", r.APIPrefix, id)
}
