package mdt

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	osc8    bool
	baseURL string
}

// WithOSC8 enables or disables OSC 8 hyperlinks.
func WithOSC8(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.osc8 = enabled
	}
}

// WithBaseURL sets the base URL that relative link and image targets are
// resolved against. Without one, relative targets are rendered as text only.
func WithBaseURL(base string) RenderOption {
	return func(cfg *renderConfig) {
		cfg.baseURL = base
	}
}
