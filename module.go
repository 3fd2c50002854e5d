package cfgchain

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/0xalexb/cfgchain/logging"

	"go.uber.org/fx"
)

// ModuleName is the Fx module name used by NewModule.
const ModuleName = "cfgchain"

// ParserParams are the graph dependencies of the Parser constructor.
type ParserParams struct {
	fx.In

	Logger       *slog.Logger          `optional:"true"`
	LoggerConfig logging.LoggerConfig `optional:"true"`
}

// NewModule creates an Fx module providing *Parser.
// A *slog.Logger from the graph is used when present; otherwise one is built
// from the optional logging.LoggerConfig, writing to stderr.
// Files given with WithFiles are read before the Parser is handed out.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(opts ...Option) fx.Option {
	return fx.Module(ModuleName,
		fx.Provide(func(params ParserParams) (*Parser, error) {
			return provideParser(params, opts)
		}),
	)
}

func provideParser(params ParserParams, opts []Option) (*Parser, error) {
	logger := params.Logger
	if logger == nil {
		logger = logging.NewLogger(params.LoggerConfig, os.Stderr)
	}

	// Explicit options win over the injected logger.
	opts = append([]Option{WithLogger(logger)}, opts...)

	parser, err := New(opts...)
	if err != nil {
		return nil, err
	}

	if len(parser.files) == 0 {
		return parser, nil
	}

	read, err := parser.Read(parser.files...)
	if err != nil {
		return nil, fmt.Errorf("reading configuration files: %w", err)
	}

	parser.logger.Info("configuration files read",
		slog.Any("files", read),
		slog.Int("skipped", len(parser.files)-len(read)),
	)

	return parser, nil
}
