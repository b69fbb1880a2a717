package models

type GigStatus string
type ApplicationStatus string

const (
	GigStatusActive   GigStatus = "ACTIVE"
	GigStatusInactive GigStatus = "INACTIVE"

	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusAccepted ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

// ValidDecision reports whether s is a status a company may decide an
// application into. PENDING is the creation-only state.
func ValidDecision(s ApplicationStatus) bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}
