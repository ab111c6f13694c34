// Package dag builds the include graph of inspected files and orders it.
package dag

import (
	"slices"
	"sort"

	"nvgtls/internal/source"
)

type NodeID uint32

// Index раздаёт файлам плотные ID в лексическом порядке.
type Index struct {
	NameToID map[source.FileID]NodeID
	IDToName []source.FileID
}

// Graph — рёбра "файл → включаемый файл".
type Graph struct {
	Edges [][]NodeID // Edges[from] = []to
	Indeg []int      // входящие степени для Kahn
}

// BuildIndex собирает уникальные файлы (и источники, и цели включений).
func BuildIndex(includes map[source.FileID][]source.FileID) Index {
	uniq := make(map[source.FileID]struct{}, len(includes))
	for from, tos := range includes {
		uniq[from] = struct{}{}
		for _, to := range tos {
			uniq[to] = struct{}{}
		}
	}
	names := make([]source.FileID, 0, len(uniq))
	for name := range uniq {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	idx := Index{NameToID: make(map[source.FileID]NodeID, len(names)), IDToName: names}
	for i, name := range names {
		idx.NameToID[name] = NodeID(i)
	}
	return idx
}

// BuildGraph строит граф включений; повторные рёбра и самовключения отбрасываются,
// самовключения возвращаются отдельно.
func BuildGraph(idx Index, includes map[source.FileID][]source.FileID) (Graph, []source.FileID) {
	n := len(idx.IDToName)
	g := Graph{Edges: make([][]NodeID, n), Indeg: make([]int, n)}
	var selfIncludes []source.FileID
	for from, tos := range includes {
		fromID := idx.NameToID[from]
		seen := make(map[NodeID]struct{}, len(tos))
		for _, to := range tos {
			toID := idx.NameToID[to]
			if toID == fromID {
				selfIncludes = append(selfIncludes, from)
				continue
			}
			if _, dup := seen[toID]; dup {
				continue
			}
			seen[toID] = struct{}{}
			g.Edges[fromID] = append(g.Edges[fromID], toID)
			g.Indeg[toID]++
		}
		slices.Sort(g.Edges[fromID])
	}
	sort.Slice(selfIncludes, func(i, j int) bool { return selfIncludes[i] < selfIncludes[j] })
	return g, selfIncludes
}
