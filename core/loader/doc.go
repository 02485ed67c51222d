// Package loader provides the plugin-like feature loading system.
//
// Each HTTP module implements Feature and is registered on a Manager by the
// serve command. LoadAll skips disabled features and mounts the rest in
// registration order.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
package loader
