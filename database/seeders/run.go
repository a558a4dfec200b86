// Package seeders populates the in-memory stores at boot. Each seeder
// registers itself from an init func; RunAll executes them in
// registration order.
package seeders

import (
	"fmt"

	"github.com/shashiranjanraj/tattvam/app/store"
	"github.com/shashiranjanraj/tattvam/pkg/logger"
)

// Seeder is one named seeding step.
type Seeder struct {
	Name string
	Run  func(s *store.Store) error
}

var registry []Seeder

// Register adds a seeder to the registry.
func Register(s Seeder) {
	registry = append(registry, s)
}

// RunAll executes every registered seeder against s.
func RunAll(s *store.Store) error {
	for _, seeder := range registry {
		if err := seeder.Run(s); err != nil {
			return fmt.Errorf("seeder %s: %w", seeder.Name, err)
		}
		logger.Info("seeder finished", "seeder", seeder.Name)
	}
	return nil
}
