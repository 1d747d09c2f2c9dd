package resolve

import (
	"context"
	"fmt"

	"github.com/randalmurphal/flowgraph/pkg/flowgraph"
	"github.com/randalmurphal/ragforge/config"
)

// run assembles the pipeline into a graph and executes it. Each step
// becomes a node that no-ops when its applies-if predicate is false, so the
// graph topology stays fixed while the predicates decide what actually
// runs. The only branching is after the template step, where community and
// llamapack templates short-circuit the full pipeline.
func (r *Resolver) run(ctx context.Context, state State) (State, error) {
	steps := r.steps()

	g := flowgraph.NewGraph[State]()
	for _, step := range steps {
		g = g.AddNode(step.Name, nodeOf(r, step))
	}

	g = g.AddConditionalEdge("template", routeTemplate).
		AddEdge("community", flowgraph.END).
		AddEdge("llamapack", "post-action")

	// Linear chain from framework through post-action.
	for i := 3; i < len(steps)-1; i++ {
		g = g.AddEdge(steps[i].Name, steps[i+1].Name)
	}
	g = g.AddEdge(steps[len(steps)-1].Name, flowgraph.END).
		SetEntry("template")

	compiled, err := g.Compile()
	if err != nil {
		return state, fmt.Errorf("compile resolution graph: %w", err)
	}
	return compiled.Run(flowgraph.NewContext(ctx), state)
}

// nodeOf adapts a Step to a graph node, logging and skipping when the step
// does not apply to the current state.
func nodeOf(r *Resolver, step Step) flowgraph.NodeFunc[State] {
	return func(ctx flowgraph.Context, state State) (State, error) {
		if !step.AppliesIf(state) {
			r.log.Debug("step skipped", "step", step.Name)
			return state, nil
		}
		r.log.Debug("step running", "step", step.Name)
		next, err := step.Run(ctx, state)
		if err != nil {
			return state, fmt.Errorf("%s: %w", step.Name, err)
		}
		return next, nil
	}
}

// routeTemplate picks the branch after template resolution. Community and
// llamapack selections bypass the full-app pipeline.
func routeTemplate(ctx flowgraph.Context, s State) string {
	switch s.Cfg.Template {
	case config.TemplateCommunity:
		return "community"
	case config.TemplateLlamaPack:
		return "llamapack"
	default:
		return "framework"
	}
}
