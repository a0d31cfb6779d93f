package uniform4d

import "github.com/Carmen-Shannon/oxy4d/engine/renderer/bind_group_provider"

// UniformsBuilderOption is a functional option for configuring a uniform block.
type UniformsBuilderOption func(*uniformsImpl)

// WithProvider uses an existing bind group provider, e.g. one shared with a compute pass.
//
// Parameters:
//   - provider: the provider to hold the uniform buffer
//
// Returns:
//   - UniformsBuilderOption: option function to apply
func WithProvider(provider bind_group_provider.BindGroupProvider) UniformsBuilderOption {
	return func(u *uniformsImpl) {
		u.provider = provider
	}
}

// WithLabel sets the debug label of the default provider.
//
// Parameters:
//   - label: the debug label
//
// Returns:
//   - UniformsBuilderOption: option function to apply
func WithLabel(label string) UniformsBuilderOption {
	return func(u *uniformsImpl) {
		u.provider = bind_group_provider.NewBindGroupProvider(label)
	}
}
