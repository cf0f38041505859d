package domain

// Graph is the directed corpus graph: nodes are pages keyed by id with
// a title label, edges record parent->child containment observed during
// traversal. All mutating operations are idempotent so duplicate child
// references and cycles in the source data no-op instead of corrupting
// the structure.
//
// Graph is not safe for concurrent mutation; the traversal driver is
// the single writer.
type Graph struct {
	// Nodes maps page id to title.
	Nodes map[string]string `json:"nodes"`

	// Edges maps parent id to child ids in first-observed order.
	// Each (parent, child) pair appears at most once.
	Edges map[string][]string `json:"edges"`
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		Nodes: make(map[string]string),
		Edges: make(map[string][]string),
	}
}

// UpsertNode adds the node or refreshes its title. Calling it twice
// with the same arguments is a no-op.
func (g *Graph) UpsertNode(id, title string) {
	g.Nodes[id] = title
}

// AddEdge records a parent->child edge exactly once. Endpoints missing
// from the node set are created with an empty title so the edge is
// never dangling.
func (g *Graph) AddEdge(parent, child string) {
	if _, ok := g.Nodes[parent]; !ok {
		g.Nodes[parent] = ""
	}
	if _, ok := g.Nodes[child]; !ok {
		g.Nodes[child] = ""
	}
	for _, existing := range g.Edges[parent] {
		if existing == child {
			return
		}
	}
	g.Edges[parent] = append(g.Edges[parent], child)
}

// HasNode reports whether the id is in the node set.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.Nodes[id]
	return ok
}

// Title returns the node's title label, or empty if absent.
func (g *Graph) Title(id string) string {
	return g.Nodes[id]
}

// Children returns a copy of the node's direct children in
// first-observed order.
func (g *Graph) Children(id string) []PageRef {
	children := g.Edges[id]
	if len(children) == 0 {
		return nil
	}
	refs := make([]PageRef, 0, len(children))
	for _, child := range children {
		refs = append(refs, PageRef{ID: child, Title: g.Nodes[child]})
	}
	return refs
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.Nodes)
}

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, children := range g.Edges {
		total += len(children)
	}
	return total
}

// GraphSummary is a read-only overview of the corpus graph, anchored
// at the configured root page.
type GraphSummary struct {
	// TotalPages is the number of nodes.
	TotalPages int

	// TotalConnections is the number of parent->child edges.
	TotalConnections int

	// RootID is the configured root page id, empty if unknown.
	RootID string

	// RootTitle is the root page's title label.
	RootTitle string

	// RootChildren lists the root's direct children.
	RootChildren []PageRef
}
