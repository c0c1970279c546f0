// internal/handlers/signup/config.go
package signup

import "time"

type Config struct {
	Timeout time.Duration
}
