// cmd/tools/seed-validator/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"mergington-activities/internal/registry"
)

func main() {
	path := flag.String("path", "configs/activities-seed.json", "Path to seed file")
	flag.Parse()

	data, err := os.ReadFile(*path)
	if err != nil {
		fmt.Printf("Error reading seed file: %v\n", err)
		os.Exit(1)
	}

	doc, err := registry.ValidateSeed(data)
	if err != nil {
		fmt.Printf("Seed file invalid: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seed file valid: %d activities\n", len(doc.Activities))
	for _, a := range doc.Activities {
		fmt.Printf("  %s (capacity %d, %d enrolled)\n", a.Name, a.MaxParticipants, len(a.Participants))
	}
}
