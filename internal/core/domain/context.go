package domain

// Session is the authenticated user session. It is owned by the auth subsystem.
type Session struct {
	Username string `json:"username"`
	Token    string `json:"sessionSecret"`
}

// BuilderContext is the per-invocation state shared by all builders.
type BuilderContext struct {
	ProjectDir     string
	Session        *Session
	Project        *ProjectConfig
	NonInteractive bool

	// SkipCredentialsCheck disables validation of local signing material.
	SkipCredentialsCheck bool
}

// ExperienceName returns the "@owner/name" namespace credentials are stored under.
// The owner defaults to the session user.
func (c *BuilderContext) ExperienceName() string {
	owner := c.Project.Owner
	if owner == "" && c.Session != nil {
		owner = c.Session.Username
	}
	return "@" + owner + "/" + c.Project.Name
}
