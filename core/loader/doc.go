// Package loader provides the feature loading system.
//
// Each feature (sync, validation, ledger, movement, snapshot, integrity)
// implements the Feature interface, which defines its name, whether it is
// enabled and its route registration logic.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager holds the registry: features are added with Register() and the
// enabled ones are mounted with LoadAll().
package loader
