// export_test.go exports private functions for white-box testing.
package app

import "go.trai.ch/peek/internal/core/domain"

// ResolveSettings exports resolveSettings for testing.
func (a *App) ResolveSettings(opts ServeOptions) (domain.Settings, error) {
	return a.resolveSettings(opts)
}
