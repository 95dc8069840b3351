package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// schema closes the accepted keys at every level; every field is optional and overrides the default
const schema = `
geometry?: close({
	width?:          number & >0
	height?:         number & >0
	discSeparation?: number & >0
	pegSpacing?:     number & >=0
	discUnit?:       number & >0
	clearance?:      number & >=0
	speed?:          number & >0
})
discs?: close({
	min?:     int & >=1 & <=63
	max?:     int & >=1 & <=63
	initial?: int & >=1 & <=63
})
terminal?: close({
	cellWidth?:  number & >0
	cellHeight?: number & >0
})
motion?:  "tick" | "delta"
frameMs?: int & >0
sound?:   bool
`

// ErrNoConfigFile is returned by Load when an optional file does not exist
var ErrNoConfigFile = errors.New("config file not found")

// Load reads path as CUE, validates it against the schema and decodes it over the defaults
// A missing file yields ErrNoConfigFile together with the defaults
func Load(path string) (Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("%s: %w", path, ErrNoConfigFile)
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := Decode(content, path, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Decode unifies src with the schema and writes the fields it sets into cfg
func Decode(src []byte, filename string, cfg *Config) error {
	ctx := cuecontext.New()

	s := ctx.CompileString("close({" + schema + "})")
	if err := s.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	value := ctx.CompileBytes(src, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return fmt.Errorf("parse %s: %w", filename, err)
	}

	unified := s.Unify(value)
	if err := unified.Validate(); err != nil {
		return fmt.Errorf("validate %s: %w", filename, err)
	}

	if err := value.Decode(cfg); err != nil {
		return fmt.Errorf("decode %s: %w", filename, err)
	}
	return cfg.Validate()
}
