// internal/handlers/listactivities/config.go
package listactivities

import "time"

type Config struct {
	Timeout time.Duration
}
