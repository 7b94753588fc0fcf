package catalog

import (
	"fmt"
	"strings"
)

// TopoOrder returns the project names in a dependencies-first order that
// keeps catalog order wherever the edges allow it. It is used to suggest a
// fix for a mis-ordered catalog; the generator itself never reorders.
func TopoOrder(c *Catalog) ([]string, error) {
	byName := make(map[string]ProjectSpec, len(c.Projects))
	for _, p := range c.Projects {
		byName[p.Name] = p
	}

	const (
		visiting = 1
		done     = 2
	)
	state := make(map[string]int, len(c.Projects))
	var order []string
	var stack []string

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("reference cycle: %s -> %s", strings.Join(stack, " -> "), name)
		}
		p, ok := byName[name]
		if !ok {
			return fmt.Errorf("unknown project %s", name)
		}

		state[name] = visiting
		stack = append(stack, name)
		// Dependencies before dependents.
		for _, ref := range p.References {
			if err := visit(ref); err != nil {
				return err
			}
		}
		stack = stack[:len(stack)-1]
		state[name] = done
		order = append(order, name)
		return nil
	}

	for _, p := range c.Projects {
		if err := visit(p.Name); err != nil {
			return nil, err
		}
	}
	return order, nil
}
