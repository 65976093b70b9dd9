// Package actions routes named action invocations to assistant operations
// and wraps their results in the uniform response envelope.
package actions

import (
	"context"
	"fmt"
	"strings"

	pkgLog "workspace-agent/pkg/log"
)

// Dispatcher maps an inbound action name and flat parameter mapping onto one
// registered tool. It keeps no state across calls.
type Dispatcher struct {
	registry *Registry
	l        pkgLog.Logger
}

// NewDispatcher creates a Dispatcher over the registry.
func NewDispatcher(registry *Registry, l pkgLog.Logger) *Dispatcher {
	return &Dispatcher{registry: registry, l: l}
}

// Dispatch executes the requested function and builds the response envelope.
// An unknown function is not an error: it yields a success envelope with a
// single explanatory line. A returned error means parameter parsing failed
// before the operation could run; the transport renders it as the 500 shape.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (Response, error) {
	params := req.ParamMap()

	messageVersion := req.MessageVersion
	if messageVersion == 0 {
		messageVersion = 1
	}

	var lines []string
	tool, ok := d.registry.Get(req.Function)
	if !ok {
		d.l.Warnf(ctx, "Dispatch: no handler for function %q", req.Function)
		lines = []string{fmt.Sprintf("No handler for function: %s", req.Function)}
	} else {
		d.l.Infof(ctx, "Dispatch: function=%s group=%s params=%d", req.Function, req.ActionGroup, len(params))
		var err error
		lines, err = tool.Execute(ctx, params)
		if err != nil {
			d.l.Errorf(ctx, "Dispatch: %s failed: %v", req.Function, err)
			return Response{}, err
		}
	}

	return Response{
		Response: ResponsePayload{
			ActionGroup: req.ActionGroup,
			Function:    req.Function,
			FunctionResponse: FunctionResponse{
				ResponseBody: ResponseBody{
					Text: TextBody{Body: strings.Join(lines, "\n\n")},
				},
			},
		},
		MessageVersion: messageVersion,
	}, nil
}
