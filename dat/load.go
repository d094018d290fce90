package dat

import (
	"github.com/rs/zerolog"

	"github.com/geniekit/geniekit/internal/mmfile"
	"github.com/geniekit/geniekit/internal/reader"
	"github.com/geniekit/geniekit/pkg/types"
)

// Option adjusts decode behavior.
type Option func(*reader.Options)

// WithLogger routes decode diagnostics (version fallback warnings, invalid
// reference debug lines) to log. The default logger discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(o *reader.Options) { o.Logger = log }
}

// WithVersionFallback permits resolving a file whose version tag belongs to
// another era of the declared game to the nearest revision of the declared
// era. The substitution is logged at warn level; it never happens silently.
func WithVersionFallback() Option {
	return func(o *reader.Options) { o.VersionFallback = true }
}

// Load decodes a complete dat archive from data. The caller declares which
// game the data belongs to; the decoder validates the file's own version tag
// against that declaration rather than sniffing the game identity.
func Load(data []byte, gv types.GameVersion, opts ...Option) (*Archive, error) {
	o := reader.Options{
		GameVersion: gv,
		Logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	res, err := reader.Decode(data, o)
	if err != nil {
		return nil, err
	}
	return &Archive{gameVersion: gv, res: res}, nil
}

// LoadFile maps the file at path, copies its contents, and decodes them.
// The mapping is released before Load returns, so the Archive never aliases
// the file.
func LoadFile(path string, gv types.GameVersion, opts ...Option) (*Archive, error) {
	mapped, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	data := make([]byte, len(mapped))
	copy(data, mapped)
	if cleanup != nil {
		if cerr := cleanup(); cerr != nil {
			return nil, cerr
		}
	}
	return Load(data, gv, opts...)
}
