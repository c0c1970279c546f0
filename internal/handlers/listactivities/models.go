// internal/handlers/listactivities/models.go
package listactivities

import "mergington-activities/internal/registry"

// Output carries the full registry snapshot; the response body is the bare
// name-to-activity object, keys in insertion order.
type Output struct {
	Activities registry.Snapshot
}
