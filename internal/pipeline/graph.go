// Package pipeline encodes the component dependency graph this repository
// is built from (Puzzle Abstraction through Aggregation Result) as data,
// and validates that the dependency table is actually a DAG. It exists so
// the architecture's own stated dependency order can be checked
// mechanically rather than asserted only in documentation.
package pipeline

import (
	"fmt"

	"github.com/dominikbraun/graph"
)

// Component names one of the eight components in dependency order.
type Component string

const (
	PuzzleAbstraction  Component = "puzzle_abstraction"
	TraceRecorder      Component = "trace_recorder"
	ReasoningMetrics   Component = "reasoning_metrics"
	EpisodeEngine      Component = "episode_engine"
	EvaluationHarness  Component = "evaluation_harness"
	FamilyRegistry     Component = "family_registry"
	ScoringPipeline    Component = "scoring_pipeline"
	AggregationResult  Component = "aggregation_result"
)

// dependencies lists, for each component, the components it directly
// depends on — the edges of the DAG, pointing from dependent to
// dependency.
var dependencies = map[Component][]Component{
	PuzzleAbstraction: {},
	TraceRecorder:     {PuzzleAbstraction},
	ReasoningMetrics:  {TraceRecorder},
	EpisodeEngine:     {PuzzleAbstraction, TraceRecorder, ReasoningMetrics},
	EvaluationHarness: {EpisodeEngine},
	FamilyRegistry:    {},
	ScoringPipeline:   {EpisodeEngine, ReasoningMetrics},
	AggregationResult: {EvaluationHarness, ScoringPipeline, FamilyRegistry},
}

// Graph builds the component dependency graph. Edges run from a
// component to what it depends on, matching the "leaves first" ordering
// the architecture documents.
func Graph() (graph.Graph[Component, Component], error) {
	g := graph.New(func(c Component) Component { return c }, graph.Directed(), graph.PreventCycles())

	for c := range dependencies {
		if err := g.AddVertex(c); err != nil {
			return nil, fmt.Errorf("add vertex %s: %w", c, err)
		}
	}
	for c, deps := range dependencies {
		for _, dep := range deps {
			if err := g.AddEdge(c, dep); err != nil {
				return nil, fmt.Errorf("add edge %s->%s: %w", c, dep, err)
			}
		}
	}
	return g, nil
}

// TopologicalOrder returns the components in an order where every
// component appears after everything it depends on — i.e. leaves
// (PuzzleAbstraction, FamilyRegistry) first, AggregationResult last.
func TopologicalOrder() ([]Component, error) {
	g, err := Graph()
	if err != nil {
		return nil, err
	}

	// graph.TopologicalSort orders from source to sink following edge
	// direction; our edges point dependent->dependency, so the raw result
	// is dependency-last. Reverse it to get leaves-first.
	order, err := graph.TopologicalSort(g)
	if err != nil {
		return nil, fmt.Errorf("dependency table is not a DAG: %w", err)
	}
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, nil
}

// Validate reports an error if the declared dependency table contains a
// cycle. Both executables call it at start, and a test calls it, so the
// table's acyclicity is checked on every run, not just asserted.
func Validate() error {
	_, err := TopologicalOrder()
	return err
}
