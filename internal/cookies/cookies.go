package cookies

import (
	"encoding/json"
	"net/http"
	"strings"

	"gamejam-portal-backend/internal/database/models"

	"github.com/gin-gonic/gin"
)

const (
	TeamCookie    = "team"
	ProfileCookie = "profile"
	SessionCookie = "session"

	// maxAge is one year in seconds
	maxAge = 365 * 24 * 60 * 60

	// PlaceholderLeaderEmail marks the demo roster the client renders before login
	PlaceholderLeaderEmail = "ornek@oyun.dev"
)

// Profile is the caller's own details as stored in the profile cookie
type Profile struct {
	Name  string             `json:"name"`
	Email string             `json:"email"`
	Phone string             `json:"phone"`
	Age   int                `json:"age"`
	Role  models.ProfileRole `json:"role"`
}

// Jar reads and writes the portal cookies with shared attributes
type Jar struct {
	secure bool
	domain string
}

// NewJar creates a cookie jar. Domain may be empty for host-only cookies.
func NewJar(secure bool, domain string) *Jar {
	return &Jar{secure: secure, domain: domain}
}

// ReadTeam returns the snapshot from the team cookie, or nil if it is absent or malformed
func (j *Jar) ReadTeam(c *gin.Context) *TeamSnapshot {
	raw, err := c.Cookie(TeamCookie)
	if err != nil || raw == "" {
		return nil
	}
	var snap TeamSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil
	}
	return &snap
}

// WriteTeam persists the snapshot for one year. The UI reads it directly so it is not HttpOnly.
func (j *Jar) WriteTeam(c *gin.Context, snap *TeamSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	j.set(c, TeamCookie, string(data), maxAge, false)
	return nil
}

// ReadProfile returns the profile cookie, or nil if it is absent or malformed
func (j *Jar) ReadProfile(c *gin.Context) *Profile {
	raw, err := c.Cookie(ProfileCookie)
	if err != nil || raw == "" {
		return nil
	}
	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil
	}
	p.Email = NormalizeEmail(p.Email)
	return &p
}

// WriteProfile persists the caller's profile for one year
func (j *Jar) WriteProfile(c *gin.Context, p *Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	j.set(c, ProfileCookie, string(data), maxAge, false)
	return nil
}

// ReadSession returns the raw session token, or ""
func (j *Jar) ReadSession(c *gin.Context) string {
	raw, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return raw
}

// WriteSession stores the session token in an HttpOnly cookie
func (j *Jar) WriteSession(c *gin.Context, token string, ttlSeconds int) {
	j.set(c, SessionCookie, token, ttlSeconds, true)
}

// ClearAll expires every portal cookie
func (j *Jar) ClearAll(c *gin.Context) {
	j.set(c, TeamCookie, "", -1, false)
	j.set(c, ProfileCookie, "", -1, false)
	j.set(c, SessionCookie, "", -1, true)
}

func (j *Jar) set(c *gin.Context, name, value string, age int, httpOnly bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, age, "/", j.domain, j.secure, httpOnly)
}

// NormalizeEmail lower-cases and trims an email for comparisons
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
