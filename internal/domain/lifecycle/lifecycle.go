// Package lifecycle holds timeouts shared by the fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown work such as the initial database ping.
const DefaultTimeout = 30 * time.Second
