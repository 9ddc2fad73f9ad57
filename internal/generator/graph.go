package generator

import (
	"errors"
	"fmt"
)

var ErrDependencyCycle = errors.New("circular dependency")

// Step produces one table. It may only read tables it lists as dependencies.
type Step struct {
	Table        string
	Dependencies []string
	Run          func(run *runState) (int, error)
}

type DependencyGraph struct {
	steps map[string]*Step
	added []string
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		steps: make(map[string]*Step),
	}
}

func (g *DependencyGraph) Add(step *Step) {
	if _, exists := g.steps[step.Table]; !exists {
		g.added = append(g.added, step.Table)
	}
	g.steps[step.Table] = step
}

// BuildOrder sorts steps so every step runs after its dependencies. Ties
// keep registration order, which makes the draw order stable across runs.
func (g *DependencyGraph) BuildOrder() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(table string) error {
		if temp[table] {
			return fmt.Errorf("%w involving table: %s", ErrDependencyCycle, table)
		}
		if visited[table] {
			return nil
		}

		step, ok := g.steps[table]
		if !ok {
			return fmt.Errorf("unknown dependency: %s", table)
		}

		temp[table] = true
		for _, dep := range step.Dependencies {
			if dep == table {
				continue
			}
			if err := visit(dep); err != nil {
				return err
			}
		}
		temp[table] = false
		visited[table] = true
		order = append(order, table)
		return nil
	}

	for _, table := range g.added {
		if err := visit(table); err != nil {
			return nil, err
		}
	}

	return order, nil
}

func (g *DependencyGraph) Step(table string) *Step {
	return g.steps[table]
}
