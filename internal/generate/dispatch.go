package generate

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/forge-labs/forge/internal/config"
)

// ErrUnknownArchitecture is returned by Route for an architecture with no
// generator.
var ErrUnknownArchitecture = errors.New("unknown architecture")

// Generator produces one project, or one workspace member, in gc.Dir.
type Generator interface {
	Generate(ctx context.Context, gc *Context) error
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, gc *Context) error

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, gc *Context) error { return f(ctx, gc) }

// Target names the generator a configuration routes to.
type Target string

const (
	TargetComposer Target = "composer"
	TargetFrontend Target = "frontend"
	TargetBackend  Target = "backend"
	TargetMobile   Target = "mobile"
)

// Route picks the generator for cfg.
func Route(cfg config.Configuration) (Target, error) {
	switch cfg.Architecture {
	case config.ArchFullstack:
		return TargetComposer, nil
	case config.ArchFrontend:
		if cfg.MobileFrontend() {
			return TargetMobile, nil
		}
		return TargetFrontend, nil
	case config.ArchMobile:
		return TargetMobile, nil
	case config.ArchBackend:
		return TargetBackend, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownArchitecture, cfg.Architecture)
	}
}

// Dispatcher routes a configuration to its generator and writes the
// project-level files that follow generation.
type Dispatcher struct {
	Frontend Generator
	Backend  Generator
	Mobile   Generator
	Composer Generator
}

// NewDispatcher wires the built-in generators.
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{
		Frontend: &Frontend{},
		Backend:  &Backend{},
		Mobile:   &Mobile{},
	}
	d.Composer = &Composer{Frontend: d.Frontend, Backend: d.Backend, Mobile: d.Mobile}
	return d
}

func (d *Dispatcher) generator(t Target) Generator {
	switch t {
	case TargetComposer:
		return d.Composer
	case TargetFrontend:
		return d.Frontend
	case TargetBackend:
		return d.Backend
	default:
		return d.Mobile
	}
}

// Dispatch generates the project described by gc.Config. Generation stops
// at the first failure; files already written are left in place.
func (d *Dispatcher) Dispatch(ctx context.Context, gc *Context) error {
	target, err := Route(gc.Config)
	if err != nil {
		return err
	}
	gen := d.generator(target)
	if gen == nil {
		return fmt.Errorf("no %s generator configured", target)
	}
	gc.logger().Debug("dispatching", zap.String("target", string(target)))

	if err := gen.Generate(ctx, gc); err != nil {
		return fmt.Errorf("generating %s project: %w", target, err)
	}
	if err := writeCompose(gc); err != nil {
		return err
	}
	return writeReadme(gc)
}
