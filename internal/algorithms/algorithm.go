// Package algorithms implements the analysis algorithm family: traversal
// (BFS, DFS), shortest path (Dijkstra, A*), connected components, degree
// centrality and Welsh-Powell coloring, behind a uniform name-dispatched
// contract. All algorithms are stateless and read the graph through its query
// surface only.
package algorithms

import (
	"fmt"
	"sort"
	"time"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/graph"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
)

// DefaultHeuristicScale is the factor applied to the Euclidean position
// distance in the A* heuristic. It is an empirical calibration for the
// default coordinate space, not a universal constant; admissibility after
// retuning is the operator's responsibility.
const DefaultHeuristicScale = 0.01

// Params carries the per-invocation inputs an algorithm may need. Fields not
// used by a given algorithm are ignored.
type Params struct {
	StartID  int
	TargetID int
	TopK     int
}

// Algorithm is the common contract of every analysis algorithm.
type Algorithm interface {
	Name() string
	Run(g *graph.Graph, p Params) *models.AlgorithmResult
}

// Engine dispatches algorithm invocations by canonical name.
type Engine struct {
	algorithms map[string]Algorithm
}

// NewEngine creates an Engine with all seven algorithms registered.
// heuristicScale tunes the A* heuristic; pass 0 for the default.
func NewEngine(heuristicScale float64) *Engine {
	if heuristicScale <= 0 {
		heuristicScale = DefaultHeuristicScale
	}

	e := &Engine{algorithms: make(map[string]Algorithm)}
	for _, a := range []Algorithm{
		&BFS{},
		&DFS{},
		&Dijkstra{},
		&AStar{Scale: heuristicScale},
		&ConnectedComponents{},
		&DegreeCentrality{},
		&WelshPowell{},
	} {
		e.algorithms[a.Name()] = a
	}

	return e
}

// Run executes the named algorithm. An unknown name is a caller error; every
// other failure is reported inside the returned result.
func (e *Engine) Run(name string, g *graph.Graph, p Params) (*models.AlgorithmResult, error) {
	a, ok := e.algorithms[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, models.ErrUnknownAlgorithm)
	}

	return a.Run(g, p), nil
}

// Names returns the registered algorithm names in sorted order.
func (e *Engine) Names() []string {
	names := make([]string, 0, len(e.algorithms))
	for name := range e.algorithms {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// run tracks elapsed time and the animation step log for one invocation.
type run struct {
	name    string
	started time.Time
	steps   []models.Step
}

func start(name string) *run {
	return &run{name: name, started: time.Now()}
}

func (r *run) step(s models.Step) {
	r.steps = append(r.steps, s)
}

// fail produces a failed result carrying only the message; no partial payload
// is ever attached.
func (r *run) fail(format string, args ...any) *models.AlgorithmResult {
	return &models.AlgorithmResult{
		Algorithm: r.name,
		Success:   false,
		ElapsedMS: r.elapsedMS(),
		Message:   fmt.Sprintf(format, args...),
	}
}

// finish stamps a successful result with timing, steps and a message.
func (r *run) finish(res *models.AlgorithmResult, format string, args ...any) *models.AlgorithmResult {
	res.Algorithm = r.name
	res.Success = true
	res.ElapsedMS = r.elapsedMS()
	res.Message = fmt.Sprintf(format, args...)
	res.Steps = r.steps

	return res
}

func (r *run) elapsedMS() float64 {
	return float64(time.Since(r.started).Microseconds()) / 1000.0
}
