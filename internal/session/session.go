// Package session carries the resolved caller identity through a request.
package session

import "github.com/gin-gonic/gin"

const contextKey = "session"

// Session is the caller identity resolved once per request.
type Session struct {
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// Anonymous reports whether no identity was presented.
func (s Session) Anonymous() bool {
	return s.Email == ""
}

// Set stores the session in the gin context.
func Set(c *gin.Context, s Session) {
	c.Set(contextKey, s)
}

// FromContext returns the session stored by Set. Requests without one get an
// anonymous session.
func FromContext(c *gin.Context) Session {
	v, ok := c.Get(contextKey)
	if !ok {
		return Session{}
	}
	s, ok := v.(Session)
	if !ok {
		return Session{}
	}
	return s
}
