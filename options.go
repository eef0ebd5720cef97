package statkit

// Option is a function type that can be used to configure the `Collector` struct.
type Option func(*Collector)

// WithRegistry is an option that sets the registry field of the `Collector` struct.
// The registry determines which statistics are available to Compute by name.
func WithRegistry(registry *Registry) Option {
	return func(collector *Collector) {
		if registry != nil {
			collector.registry = registry
		}
	}
}
