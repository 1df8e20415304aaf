// Package lifecycle holds shared timeouts for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds how long start and stop hooks may take.
const DefaultTimeout = 10 * time.Second
