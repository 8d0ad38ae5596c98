package connectivity

import (
	"sort"

	"github.com/gifnksm/srither/connectmap"
	"github.com/gifnksm/srither/geom"
	"github.com/gifnksm/srither/puzzle"
	"github.com/gifnksm/srither/sidemap"
)

// Run syncs cm against sm and, for each side in turn, forces every
// disconnected hint-free region to the opposite side and every
// region-separating articulation point to the side it bridges.
func Run(sm *sidemap.SideMap, cm *connectmap.ConnectMap) error {
	if err := cm.Sync(sm); err != nil {
		return err
	}

	type sidePair struct{ set, filter puzzle.Side }
	sides := []sidePair{
		{puzzle.In, puzzle.Out},
		{puzzle.Out, puzzle.In},
	}

	for _, sp := range sides {
		pts, graph := createConnGraph(cm, sp.filter)
		arts, visited := getArticulation(graph, 0)

		for _, v := range findDisconnArea(cm, pts, visited) {
			sm.SetSideID(pts[v], sp.filter)
		}

		for _, v := range arts {
			p := pts[v]
			rec := cm.Get(p)
			alreadySet := rec.Side.Kind == puzzle.Fixed && rec.Side.Value == sp.set
			if !alreadySet && splits(graph, v, cm, pts, sp.set) {
				sm.SetSideID(p, sp.set)
			}
		}
	}

	return nil
}

// createConnGraph builds the subgraph over every region not already Fixed
// to filterSide (plus the outside region, when filterSide itself is not
// Out), with edges from each region's UnknownEdge links.
func createConnGraph(cm *connectmap.ConnectMap, filterSide puzzle.Side) ([]geom.CellID, [][]int) {
	var pts []geom.CellID
	outsideRep := cm.Get(geom.OutsideCellID).Coord
	if filterSide != puzzle.Out {
		pts = append(pts, geom.OutsideCellID)
	}

	for i := 0; i < cm.CellLen(); i++ {
		p := geom.CellID(i)
		rec := cm.Get(p)
		if rec.Coord != p {
			continue // not a representative
		}
		if rec.Side.Kind == puzzle.Fixed && rec.Side.Value == filterSide {
			continue
		}
		if filterSide != puzzle.Out && p == outsideRep {
			continue // the outside region is already vertex OutsideCellID
		}
		pts = append(pts, p)
	}

	sort.Slice(pts, func(i, j int) bool { return pts[i] < pts[j] })

	graph := make([][]int, len(pts))
	for i, p := range pts {
		rec := cm.Get(p)
		for _, nb := range rec.UnknownEdge {
			if filterSide != puzzle.Out && nb == outsideRep {
				nb = geom.OutsideCellID
			}
			idx := sort.Search(len(pts), func(k int) bool { return pts[k] >= nb })
			if idx < len(pts) && pts[idx] == nb {
				graph[i] = append(graph[i], idx)
			}
		}
	}

	return pts, graph
}

// getArticulation runs Tarjan's articulation-point DFS from vertex v over
// graph, returning the articulation points found and the visited mask.
func getArticulation(graph [][]int, v int) ([]int, []bool) {
	if len(graph) == 0 {
		return nil, nil
	}

	visited := make([]bool, len(graph))
	ord := make([]int, len(graph))
	low := make([]int, len(graph))
	var arts []int
	ordCnt := 0

	var dfs func(v int)
	dfs = func(v int) {
		ordCnt++
		visited[v] = true
		ord[v] = ordCnt
		low[v] = ord[v]

		isArticulation := false
		numChild := 0

		for _, u := range graph[v] {
			if u == v {
				continue
			}
			if !visited[u] {
				dfs(u)
				numChild++
				if low[u] < low[v] {
					low[v] = low[u]
				}
				if ord[v] != 1 && ord[v] <= low[u] {
					isArticulation = true
				}
			} else if ord[u] < low[v] {
				low[v] = ord[u]
			}
		}

		if ord[v] == 1 && numChild > 1 {
			isArticulation = true
		}
		if isArticulation {
			arts = append(arts, v)
		}
	}
	dfs(v)

	return arts, visited
}

// findDisconnArea reports the indices into pts that get_articulation left
// unvisited, if that unvisited set is a hole (carries no hints) or if the
// visited set is the hole instead (both sides are checked; if both the
// visited and unvisited sets carry hints, the split is ambiguous and
// neither is reported).
func findDisconnArea(cm *connectmap.ConnectMap, pts []geom.CellID, visited []bool) []int {
	var disconn []int
	for u, vis := range visited {
		if !vis {
			disconn = append(disconn, u)
		}
	}
	if len(disconn) == 0 {
		return nil
	}

	disconnSum := 0
	for _, v := range disconn {
		disconnSum += cm.Get(pts[v]).SumOfHint
	}
	if disconnSum == 0 {
		return disconn
	}

	var conn []int
	for u, vis := range visited {
		if vis {
			conn = append(conn, u)
		}
	}
	connSum := 0
	for _, v := range conn {
		connSum += cm.Get(pts[v]).SumOfHint
	}
	if connSum == 0 {
		return conn
	}

	return nil
}

// splits reports whether removing vertex v from graph partitions the
// remainder into two or more components that each contain a region already
// Fixed to side.
func splits(graph [][]int, v int, cm *connectmap.ConnectMap, pts []geom.CellID, side puzzle.Side) bool {
	if len(graph) == 0 {
		return false
	}

	containCnt := 0
	visited := make([]bool, len(graph))
	visited[v] = true

	var dfs func(v int) bool
	dfs = func(v int) bool {
		rec := cm.Get(pts[v])
		contains := rec.Side.Kind == puzzle.Fixed && rec.Side.Value == side
		visited[v] = true
		for _, u := range graph[v] {
			if u == v || visited[u] {
				continue
			}
			if dfs(u) {
				contains = true
			}
		}
		return contains
	}

	for _, u := range graph[v] {
		if u == v || visited[u] {
			continue
		}
		if dfs(u) {
			containCnt++
		}
	}

	return containCnt > 1
}
