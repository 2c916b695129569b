package typehandler

import "github.com/mandelsoft/logging"

// Option configures a registry at construction time.
type Option func(*registry) error

// WithBuiltins registers the builtin handlers.
func WithBuiltins() Option {
	return WithHandlers(Builtins()...)
}

// WithHandlers registers hs in order. Construction fails on the first
// handler that cannot be registered.
func WithHandlers(hs ...Handler) Option {
	return func(r *registry) error {
		for _, h := range hs {
			if err := r.Register(h); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithLogger replaces the package logger.
func WithLogger(l logging.Logger) Option {
	return func(r *registry) error {
		if l != nil {
			r.log = l
		}
		return nil
	}
}
