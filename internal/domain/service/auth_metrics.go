package service

// Outcome labels recorded for every authentication operation.
const (
	OutcomeSuccess            = "success"
	OutcomeInvalidInput       = "invalid_input"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeUnauthorized       = "unauthorized"
	OutcomeForbidden          = "forbidden"
	OutcomeError              = "error"
)

// AuthMetrics records authentication outcomes and session counts.
type AuthMetrics interface {
	// ObserveAttempt counts one operation ("authenticate", "refresh", "revoke") with its outcome.
	ObserveAttempt(operation, outcome string)

	// SetActiveSessions reports the number of stored refresh token records.
	SetActiveSessions(n int)
}
