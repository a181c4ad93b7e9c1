// Package lifecycle holds process-wide lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds every graceful shutdown step.
const DefaultTimeout = 10 * time.Second
