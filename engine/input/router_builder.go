package input

// RouterOption is a functional option for configuring a Router.
type RouterOption func(*routerImpl)

// WithResetKeys replaces the keys that restore the home pose.
//
// Parameters:
//   - keys: GLFW-compatible key codes; none disables key reset
//
// Returns:
//   - RouterOption: option function to apply
func WithResetKeys(keys ...uint32) RouterOption {
	return func(r *routerImpl) {
		r.resetKeys = make(map[uint32]struct{}, len(keys))
		for _, k := range keys {
			r.resetKeys[k] = struct{}{}
		}
	}
}

// WithVerbose logs drag, zoom and reset events.
//
// Parameters:
//   - verbose: true to log events
//
// Returns:
//   - RouterOption: option function to apply
func WithVerbose(verbose bool) RouterOption {
	return func(r *routerImpl) {
		r.verbose = verbose
	}
}
