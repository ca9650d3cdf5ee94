// pkg/hexmap/pathfinding.go
package hexmap

import "container/heap"

// AStar находит кратчайший путь от start до goal по проходимым гексам.
// Путь включает оба конца; nil - пути нет. При равной оценке раскрывается
// гекс, который ближе к цели, поэтому маршрут не зависит от порядка обхода соседей.
func AStar(start, goal Hex, hm *HexMap) []Hex {
	if !hm.IsPassable(start) || !hm.IsPassable(goal) {
		return nil
	}

	frontier := &openSet{}
	heap.Push(frontier, openItem{hex: start, heuristic: start.Distance(goal)})
	cameFrom := map[Hex]Hex{start: start}
	cost := map[Hex]int{start: 0}

	for frontier.Len() > 0 {
		current := heap.Pop(frontier).(openItem)
		if current.hex == goal {
			return walkBack(cameFrom, start, goal)
		}
		if current.cost > cost[current.hex] {
			continue // устаревшая запись
		}
		for _, next := range current.hex.Neighbors(hm) {
			if !hm.IsPassable(next) {
				continue
			}
			newCost := cost[current.hex] + 1
			if old, seen := cost[next]; seen && old <= newCost {
				continue
			}
			cost[next] = newCost
			cameFrom[next] = current.hex
			h := next.Distance(goal)
			heap.Push(frontier, openItem{hex: next, cost: newCost, heuristic: h})
		}
	}
	return nil
}

func walkBack(cameFrom map[Hex]Hex, start, goal Hex) []Hex {
	var reversed []Hex
	for h := goal; h != start; h = cameFrom[h] {
		reversed = append(reversed, h)
	}
	reversed = append(reversed, start)

	path := make([]Hex, len(reversed))
	for i, h := range reversed {
		path[len(reversed)-1-i] = h
	}
	return path
}

type openItem struct {
	hex       Hex
	cost      int
	heuristic int
}

func (it openItem) priority() int { return it.cost + it.heuristic }

// openSet - min-куча для heap.Interface.
type openSet []openItem

func (s openSet) Len() int { return len(s) }
func (s openSet) Less(i, j int) bool {
	if s[i].priority() != s[j].priority() {
		return s[i].priority() < s[j].priority()
	}
	return s[i].heuristic < s[j].heuristic
}
func (s openSet) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s *openSet) Push(x any) { *s = append(*s, x.(openItem)) }

func (s *openSet) Pop() any {
	old := *s
	item := old[len(old)-1]
	*s = old[:len(old)-1]
	return item
}
