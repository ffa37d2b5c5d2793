package pjson

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/mcncl/pjson/internal/config"
	"github.com/mcncl/pjson/internal/models"
	"github.com/mcncl/pjson/internal/parser"
)

// Duplicate key policies accepted by WithDuplicateKeys.
const (
	// DuplicateLastWins keeps the last member written for a repeated key.
	DuplicateLastWins = config.DuplicateLastWins
	// DuplicateReject fails decoding on a repeated key.
	DuplicateReject = config.DuplicateReject
)

// Decoder reads JSON text into Values.
type Decoder struct {
	cfg *config.Config
	log *slog.Logger
}

// Option configures a Decoder.
type Option func(*Decoder) error

// WithMaxDepth limits container nesting. Zero means no limit.
func WithMaxDepth(depth int) Option {
	return func(d *Decoder) error {
		d.cfg.SetMaxDepth(depth)
		return nil
	}
}

// WithDuplicateKeys selects DuplicateLastWins or DuplicateReject.
func WithDuplicateKeys(policy string) Option {
	return func(d *Decoder) error {
		d.cfg.SetDuplicateKeys(policy)
		return nil
	}
}

// WithLogger sets the logger. If unset, slog.Default() is used unless the
// configuration enables debug or verbose output.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Decoder) error {
		d.log = logger
		return nil
	}
}

// WithConfigFile merges the YAML configuration at path over the settings
// made so far. Only keys present in the file take effect.
func WithConfigFile(path string) Option {
	return func(d *Decoder) error {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return err
		}
		d.cfg = config.MergeConfigs(d.cfg, loaded)
		return nil
	}
}

// WithDiscoveredConfig is WithConfigFile for the first .pjson.yml (or
// .pjson.yaml, pjson.yml, pjson.yaml) found walking up from the working
// directory. Finding none is not an error.
func WithDiscoveredConfig() Option {
	return func(d *Decoder) error {
		path := config.FindConfigFile()
		if path == "" {
			return nil
		}
		return WithConfigFile(path)(d)
	}
}

// NewDecoder returns a Decoder with the options applied in order.
func NewDecoder(opts ...Option) (*Decoder, error) {
	d := &Decoder{cfg: config.NewConfig()}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	if err := d.cfg.Validate(); err != nil {
		return nil, err
	}
	if d.log == nil {
		switch {
		case d.cfg.Dev.Debug:
			d.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		case d.cfg.Dev.Verbose:
			d.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
		}
	}
	return d, nil
}

func (d *Decoder) logger() *slog.Logger {
	if d.log == nil {
		return slog.Default()
	}
	return d.log
}

func (d *Decoder) parseOptions() parser.Options {
	return parser.Options{
		MaxDepth:         d.cfg.MaxDepth(),
		RejectDuplicates: d.cfg.RejectDuplicates(),
	}
}

// Decode reads exactly one JSON value from r.
func (d *Decoder) Decode(r io.Reader) (Value, error) {
	raw, err := parser.Parse(r, d.parseOptions())
	if err != nil {
		return Value{}, err
	}
	return d.finish(raw)
}

// DecodeString decodes the JSON text s.
func (d *Decoder) DecodeString(s string) (Value, error) {
	raw, err := parser.ParseString(s, d.parseOptions())
	if err != nil {
		return Value{}, err
	}
	return d.finish(raw)
}

// DecodeFile decodes the JSON file at path.
func (d *Decoder) DecodeFile(path string) (Value, error) {
	raw, err := parser.ParseFile(path, d.parseOptions())
	if err != nil {
		return Value{}, err
	}
	return d.finish(raw)
}

func (d *Decoder) finish(raw models.JSONValue) (Value, error) {
	log := d.logger()
	v, err := convert(raw, func(key string) {
		log.Debug("duplicate key collapsed", "key", key)
	})
	if err != nil {
		return Value{}, err
	}

	level := slog.LevelDebug
	if d.cfg.Dev.Verbose {
		level = slog.LevelInfo
	}
	attrs := []any{"type", v.Type().String()}
	switch v.Type() {
	case ArrayType:
		attrs = append(attrs, "len", v.arr.Len())
	case ObjectType:
		attrs = append(attrs, "len", v.obj.Len())
	}
	log.Log(context.Background(), level, "decode finished", attrs...)
	return v, nil
}

var defaultDecoder = &Decoder{cfg: config.NewConfig()}

// Decode reads one JSON value from r with the default settings.
func Decode(r io.Reader) (Value, error) {
	return defaultDecoder.Decode(r)
}

// DecodeString decodes s with the default settings.
func DecodeString(s string) (Value, error) {
	return defaultDecoder.DecodeString(s)
}
