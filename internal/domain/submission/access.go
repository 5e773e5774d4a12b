package submission

// Actor is the authenticated identity a permission check runs against.
type Actor struct {
	UserID         string
	IsAdmin        bool
	EmploymentType string
}

// CanAccessReport is the single authorization predicate applied before any
// report-returning operation: admins see everything, everyone else only
// their own records. Denials leak nothing about the record.
func CanAccessReport(actor Actor, ownerID string) bool {
	return actor.IsAdmin || actor.UserID == ownerID
}
