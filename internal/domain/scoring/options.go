package scoring

// Option applies a configuration option to the Composer.
type Option func(*Composer)

// WithWeightTable replaces the default provider weight table.
func WithWeightTable(t WeightTable) Option {
	return func(c *Composer) {
		if len(t) > 0 {
			c.weights = t.clone()
		}
	}
}
