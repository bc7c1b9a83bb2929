package config

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/cognicore/deduce/pkg/deduce/inference/simple"
	"github.com/cognicore/deduce/pkg/deduce/interpreter"
	"github.com/cognicore/deduce/pkg/deduce/transcript"
	"github.com/cognicore/deduce/pkg/deduce/transcript/memstore"
	"github.com/cognicore/deduce/pkg/deduce/transcript/sqlite"
)

// Loader builds components from a configuration
type Loader struct {
	Config *Config
	Logger *zap.Logger
}

// Components holds all constructed components
type Components struct {
	Engine      *simple.Engine
	Transcript  transcript.Store // nil when disabled
	Interpreter *interpreter.Interpreter
	Prompt      string
}

// Load validates the configuration, seeds the engine from every rule file
// and wires the interpreter
func (l *Loader) Load(ctx context.Context) (*Components, error) {
	cfg := l.Config
	if cfg == nil {
		cfg = Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := l.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	engine := simple.New(simple.WithLogger(logger), simple.WithStrict(cfg.Strict))

	// Load rules
	for _, path := range cfg.Rules {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read rules: %w", err)
		}
		if err := engine.LoadRules(string(data)); err != nil {
			return nil, fmt.Errorf("load rules %s: %w", path, err)
		}
		logger.Info("Loaded rules", zap.String("path", path), zap.Int("nouns", len(engine.Nouns())))
	}

	// Open transcript
	var store transcript.Store
	switch cfg.Transcript.Driver {
	case DriverSQLite:
		st, err := sqlite.OpenSQLite(ctx, cfg.Transcript.Path)
		if err != nil {
			return nil, fmt.Errorf("open transcript: %w", err)
		}
		store = st
	case DriverMemory:
		store = memstore.New()
	}

	opts := []interpreter.Option{interpreter.WithLogger(logger)}
	if store != nil {
		opts = append(opts, interpreter.WithTranscript(store))
	}

	return &Components{
		Engine:      engine,
		Transcript:  store,
		Interpreter: interpreter.New(engine, opts...),
		Prompt:      cfg.Prompt,
	}, nil
}

// Close releases the transcript store
func (c *Components) Close() error {
	if c.Transcript == nil {
		return nil
	}
	return c.Transcript.Close()
}
