// internal/handlers/unregister/config.go
package unregister

import "time"

type Config struct {
	Timeout time.Duration
}
