package tool

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"go.uber.org/zap"

	apperrors "turnero/internal/errors"
)

// Dispatcher resolves tool calls against a Registry, independent of the
// transport shape the call arrived in.
//
// Permissive mode substitutes each parameter's declared default for absent
// required parameters, matching the historic caller-facing behavior. The
// default mode is strict: absent required parameters are rejected with a
// MissingParameterError.
type Dispatcher struct {
	registry   *Registry
	permissive bool
	log        *zap.Logger
}

func NewDispatcher(registry *Registry, permissive bool, log *zap.Logger) *Dispatcher {
	return &Dispatcher{registry: registry, permissive: permissive, log: log}
}

// Dispatch resolves the named tool, normalizes the raw arguments against its
// declared parameters and invokes the handler.
//
// Routing failures (empty name, unknown tool, strict-mode missing parameter)
// and infrastructure faults are returned as errors for the transport adapter
// to map. Domain failures, including argument values that fail coercion,
// come back as a Result with Success false.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, rawArgs map[string]any) (*Result, error) {
	if name == "" {
		return nil, apperrors.ErrMissingToolName
	}
	b, ok := d.registry.lookup(name)
	if !ok {
		return nil, apperrors.UnknownTool(name)
	}

	args, err := d.normalize(b.desc, rawArgs)
	if err != nil {
		if apperrors.IsMalformedRequest(err) {
			return &Result{Success: false, Message: err.Error()}, nil
		}
		return nil, err
	}

	d.log.Debug("dispatching tool call", zap.String("tool", name))
	return b.handler(ctx, args)
}

// normalize coerces declared parameters to their declared types and resolves
// absent required parameters per the dispatch mode. Arguments not covered by
// the descriptor pass through untouched.
func (d *Dispatcher) normalize(desc Descriptor, rawArgs map[string]any) (Args, error) {
	args := make(Args, len(rawArgs))
	for k, v := range rawArgs {
		args[k] = v
	}

	for _, p := range desc.Params {
		raw, present := args[p.Name]
		if !present {
			if !p.Required {
				continue
			}
			if !d.permissive {
				return nil, apperrors.MissingParameter(p.Name)
			}
			d.log.Warn("substituting default for missing parameter",
				zap.String("tool", desc.Name), zap.String("parameter", p.Name))
			raw = p.Default
		}

		coerced, err := coerce(p, raw)
		if err != nil {
			return nil, err
		}
		args[p.Name] = coerced
	}
	return args, nil
}

func coerce(p Param, raw any) (any, error) {
	switch p.Type {
	case TypeInteger:
		switch v := raw.(type) {
		case int:
			return v, nil
		case float64:
			if math.Trunc(v) == v {
				return int(v), nil
			}
		case string:
			if n, err := strconv.Atoi(v); err == nil {
				return n, nil
			}
		}
		return nil, apperrors.MalformedRequest(p.Name, "must be an integer")
	default:
		switch v := raw.(type) {
		case string:
			return v, nil
		case float64, int, bool:
			return fmt.Sprint(v), nil
		}
		return nil, apperrors.MalformedRequest(p.Name, "must be a string")
	}
}
