package graph

// Direction selects which way a hop follows edges
type Direction int

const (
	// Out follows edges from source to target
	Out Direction = iota
	// In follows edges from target back to source
	In
)

// Hop is one traversal step across edges of a single type in a fixed
// direction
type Hop struct {
	Type EdgeType
	Dir  Direction
}

// Pattern is an anchored chain of hops. Anchors are the node ids the
// traversal starts from, already narrowed by whatever equality filter the
// query applies.
type Pattern struct {
	Anchors []string
	Hops    []Hop
}

// Match executes the pattern and returns one binding row per complete path:
// the anchor id followed by one node id per hop. A hop with zero matches
// drops the row entirely, so no partial rows appear. Row order follows
// anchor order, then edge insertion order per hop.
func (s *Store) Match(p Pattern) [][]string {
	rows := make([][]string, 0, len(p.Anchors))
	for _, anchor := range p.Anchors {
		rows = append(rows, []string{anchor})
	}

	for _, hop := range p.Hops {
		var next [][]string
		for _, row := range rows {
			last := row[len(row)-1]
			var neighbors []string
			if hop.Dir == Out {
				neighbors = s.out[hop.Type][last]
			} else {
				neighbors = s.in[hop.Type][last]
			}
			for _, id := range neighbors {
				extended := make([]string, len(row), len(row)+1)
				copy(extended, row)
				next = append(next, append(extended, id))
			}
		}
		rows = next
	}

	return rows
}

// column extracts one column of a binding row set
func column(rows [][]string, idx int) []string {
	values := make([]string, 0, len(rows))
	for _, row := range rows {
		values = append(values, row[idx])
	}
	return values
}
