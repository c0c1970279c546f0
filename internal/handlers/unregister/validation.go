// internal/handlers/unregister/validation.go
package unregister

import "mergington-activities/internal/common/errors"

func validateInput(input *Input) error {
	if input.Email == "" {
		return errors.NewEmailRequiredError()
	}
	return nil
}
