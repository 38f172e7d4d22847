// SPDX-License-Identifier: MIT
//
// config.go — functional-option configuration shared by every topology
// constructor.
package builder

// PayloadFn produces the application-defined payload stored on the cell at
// (row, col). Path treats its single dimension as row 0.
type PayloadFn func(row, col int) interface{}

// DefaultPayloadFn stores no payload.
func DefaultPayloadFn(row, col int) interface{} { return nil }

// BuilderOption customizes a builderConfig before a Constructor runs.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the parameters every Constructor reads. It is
// resolved once per BuildGrid call from defaults plus BuilderOptions in
// order, later options overriding earlier ones.
type builderConfig struct {
	payloadFn PayloadFn
}

// newBuilderConfig returns a builderConfig initialized with defaults and
// then mutated by each opt in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{payloadFn: DefaultPayloadFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithPayloadFn overrides the per-cell payload generator. A nil fn is a
// no-op, leaving the previous generator in place.
func WithPayloadFn(fn PayloadFn) BuilderOption {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.payloadFn = fn
		}
	}
}
