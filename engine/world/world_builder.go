package world

// WorldBuilderOption is a functional option for configuring a World.
type WorldBuilderOption func(*worldImpl)

// WithWorkers sets the maximum number of workers used by FillBoxes.
// Values below one are raised to one.
//
// Parameters:
//   - n: the worker count
//
// Returns:
//   - WorldBuilderOption: option function to apply
func WithWorkers(n int) WorldBuilderOption {
	return func(w *worldImpl) {
		w.workers = max(n, 1)
	}
}
