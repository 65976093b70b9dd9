package actions

import "context"

// Tool is one dispatchable action. Execute receives the flattened parameter
// map and returns the result as text lines. A returned error escapes the
// success envelope and becomes the top-level 500 shape, so tools convert
// operation failures into text lines themselves and reserve errors for
// malformed parameters.
type Tool interface {
	Name() string
	Description() string
	Execute(ctx context.Context, params map[string]string) ([]string, error)
}

// Registry maps function names to tools.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool, keyed by its name.
func (r *Registry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools.
func (r *Registry) List() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	return tools
}
