package setting

// ControlFactory builds an editing control for a setting. Implementations
// receive the setting plus opaque arguments forwarded from RequestControl.
// The returned handle is opaque to this package.
type ControlFactory interface {
	MakeControl(s *Setting, args ...any) any
}

// RequestControl delegates control construction to the factory, forwarding
// the opaque arguments unchanged. The core never inspects the result.
func (s *Setting) RequestControl(f ControlFactory, args ...any) any {
	return f.MakeControl(s, args...)
}
