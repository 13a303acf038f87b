package flightplan

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"sync"
)

//go:embed plans/*.yaml
var builtinFS embed.FS

// Info contains metadata about a registered plan.
type Info struct {
	Name  string
	Title string
	Ticks int // scripted ticks, before coasting
}

var (
	plans = make(map[string]Plan)
	mu    sync.RWMutex
)

// Register adds a plan to the registry.
// Panics if the plan is invalid or a plan with the same name is already registered.
func Register(p Plan) {
	if err := p.Validate(); err != nil {
		panic(fmt.Sprintf("flightplan: %v", err))
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := plans[p.Name]; exists {
		panic(fmt.Sprintf("flightplan: plan %q already registered", p.Name))
	}
	plans[p.Name] = p
}

// List returns information about all registered plans, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(plans))
	for name, p := range plans {
		result = append(result, Info{
			Name:  name,
			Title: p.Title,
			Ticks: p.ScriptedTicks(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get returns a registered plan by name.
func Get(name string) (Plan, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := plans[name]
	if !ok {
		return Plan{}, fmt.Errorf("flightplan: unknown plan %q", name)
	}
	return p, nil
}

// Exists checks if a plan with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := plans[name]
	return ok
}

// registerBuiltins parses every embedded plan file.
func registerBuiltins(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		data, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return err
		}
		p, err := Parse(data)
		if err != nil {
			return fmt.Errorf("%s: %w", e.Name(), err)
		}
		Register(p)
	}
	return nil
}

// Register the built-in plans with the registry
func init() {
	if err := registerBuiltins(builtinFS, "plans"); err != nil {
		panic(err)
	}
}
