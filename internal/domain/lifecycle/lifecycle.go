// Package lifecycle holds shared timing for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook: DB ping, Redis ping,
// publisher close and HTTP shutdown.
const DefaultTimeout = 10 * time.Second
