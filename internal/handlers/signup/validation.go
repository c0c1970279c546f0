// internal/handlers/signup/validation.go
package signup

import "mergington-activities/internal/common/errors"

// validateInput enforces the transport-level preconditions only. The email
// itself is an opaque string; format checks are out of contract.
func validateInput(input *Input) error {
	if input.Email == "" {
		return errors.NewEmailRequiredError()
	}
	return nil
}
