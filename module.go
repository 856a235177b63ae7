package ipaconfig

import (
	"log/slog"

	"go.uber.org/fx"
)

// ModuleName is the Fx module name used by NewModule.
const ModuleName = "ipaconfig"

type moduleParams struct {
	fx.In

	Logger *slog.Logger `optional:"true"`
}

// NewModule creates an Fx module that provides *Config read from path.
// A *slog.Logger in the container is used unless WithLogger is passed.
// A failed load fails the application start.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(path string, opts ...Option) fx.Option {
	return fx.Module(ModuleName,
		fx.Provide(func(params moduleParams) (*Config, error) {
			loadOpts := make([]Option, 0, len(opts)+1)
			if params.Logger != nil {
				loadOpts = append(loadOpts, WithLogger(params.Logger))
			}

			loadOpts = append(loadOpts, opts...)

			return Read(path, loadOpts...)
		}),
	)
}
