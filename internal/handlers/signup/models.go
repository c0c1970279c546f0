// internal/handlers/signup/models.go
package signup

// Input is the parsed request: activity name from the path (already
// percent-decoded by the router), email from the query string.
type Input struct {
	ActivityName string
	Email        string
}

type Output struct {
	Message string `json:"message"`
}
