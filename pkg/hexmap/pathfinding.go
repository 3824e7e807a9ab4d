// pkg/hexmap/pathfinding.go
package hexmap

import (
	"container/heap"
	"math"
)

// PathResult — результат поиска пути.
// Costs[i] — накопленная стоимость на шаге Path[i], Costs[0] == 0.
type PathResult struct {
	Path  []Hex
	Cost  float64
	Costs []float64
}

// Found сообщает, был ли найден путь
func (r PathResult) Found() bool {
	return len(r.Path) > 0 && !math.IsInf(r.Cost, 1)
}

func noPath() PathResult {
	return PathResult{Path: []Hex{}, Cost: math.Inf(1), Costs: []float64{}}
}

// FindPath ищет путь минимальной стоимости алгоритмом Дейкстры.
// costMap — плоский массив стоимостей входа в клетку, индекс x + y*width.
// Если end недостижима или совпадает со start, возвращается пустой путь с Cost = +Inf.
func FindPath(costMap []float64, width int, start, end Hex) PathResult {
	if width <= 0 || len(costMap) == 0 {
		return noPath()
	}
	height := len(costMap) / width
	if start == end || !start.InBounds(width, height) || !end.InBounds(width, height) {
		return noPath()
	}

	dist := make([]float64, len(costMap))
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	prev := make([]int, len(costMap))
	for i := range prev {
		prev[i] = -1
	}
	dist[start.Index(width)] = 0

	pq := &PriorityQueue{}
	heap.Init(pq)
	seq := 0
	heap.Push(pq, &Node{Hex: start, Cost: 0, Seq: seq})

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if current.Cost > dist[current.Hex.Index(width)] {
			continue // устаревшая запись
		}
		for _, n := range current.Hex.Neighbors() {
			if !n.InBounds(width, height) {
				continue
			}
			ni := n.Index(width)
			newCost := current.Cost + costMap[ni]
			if newCost < dist[ni] {
				dist[ni] = newCost
				prev[ni] = current.Hex.Index(width)
				seq++
				heap.Push(pq, &Node{Hex: n, Cost: newCost, Seq: seq})
			}
		}
	}

	endIdx := end.Index(width)
	if prev[endIdx] < 0 {
		return noPath()
	}

	var path []Hex
	var costs []float64
	for i := endIdx; i >= 0; i = prev[i] {
		path = append(path, FromIndex(i, width))
		costs = append(costs, dist[i])
	}
	reverse(path)
	reverse(costs)
	return PathResult{Path: path, Cost: dist[endIdx], Costs: costs}
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// PriorityQueue для Дейкстры. При равной стоимости раньше выходит узел,
// добавленный раньше.
type PriorityQueue []*Node

type Node struct {
	Hex  Hex
	Cost float64
	Seq  int
}

func (pq PriorityQueue) Len() int { return len(pq) }
func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].Cost == pq[j].Cost {
		return pq[i].Seq < pq[j].Seq
	}
	return pq[i].Cost < pq[j].Cost
}
func (pq PriorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}
