package dag_test

import (
	"testing"

	"nvgtls/internal/project/dag"
	"nvgtls/internal/source"
)

func TestAcyclicOrder(t *testing.T) {
	includes := map[source.FileID][]source.FileID{
		"file:///main": {"file:///ui", "file:///util", "file:///util"},
		"file:///ui":   {"file:///util"},
	}
	idx := dag.BuildIndex(includes)
	g, self := dag.BuildGraph(idx, includes)
	if len(self) != 0 {
		t.Fatalf("unexpected self includes %v", self)
	}
	topo := dag.ToposortKahn(g)
	if topo.Cyclic {
		t.Fatalf("graph is acyclic")
	}
	got := idx.Names(topo.Order)
	want := []source.FileID{"file:///main", "file:///ui", "file:///util"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order %v, want %v", got, want)
		}
	}
	if len(topo.Batches) != 3 {
		t.Fatalf("expected 3 batches, got %d", len(topo.Batches))
	}
}

func TestCycleDetected(t *testing.T) {
	includes := map[source.FileID][]source.FileID{
		"file:///a": {"file:///b"},
		"file:///b": {"file:///a"},
		"file:///c": {"file:///c"},
	}
	idx := dag.BuildIndex(includes)
	g, self := dag.BuildGraph(idx, includes)
	if len(self) != 1 || self[0] != "file:///c" {
		t.Fatalf("unexpected self includes %v", self)
	}
	topo := dag.ToposortKahn(g)
	if !topo.Cyclic {
		t.Fatalf("cycle not detected")
	}
	cycle := idx.Names(topo.Cycles)
	if len(cycle) != 2 || cycle[0] != "file:///a" || cycle[1] != "file:///b" {
		t.Fatalf("unexpected cycle members %v", cycle)
	}
}
