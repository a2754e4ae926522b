package domain

// Principal is the authenticated identity attached to a request,
// derived from a verified token. It is never persisted.
type Principal struct {
	ID    string
	Email string
	Role  Role
}
