// internal/handlers/unregister/models.go
package unregister

type Input struct {
	ActivityName string
	Email        string
}

type Output struct {
	Message string `json:"message"`
}
