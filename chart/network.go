package chart

import (
	"math"

	"github.com/gripdash/gripdash/dossier"
)

// Node is one vertex of the biological network. Type is one of target,
// pathway, mechanism or indication.
type Node struct {
	ID   string  `json:"id"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Size int     `json:"size"`
	Type string  `json:"type"`
}

// Edge connects two nodes by id.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Network is the fixed-layout target-pathway-mechanism-indication graph.
type Network struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Fallback rings for dossiers without pathway and mechanism content.
var (
	defaultPathways   = []string{"Necroptosis", "Inflammation", "Cell Death"}
	defaultMechanisms = []string{"Target Mechanism 1", "Target Mechanism 2"}
)

// BuildNetwork lays out the biological network for a dossier: the
// target at the center, pathways on an inner ring, mechanisms on an
// outer ring connected round-robin to pathways, and the indication at
// the bottom collecting every mechanism.
func BuildNetwork(target string, d *dossier.Dossier) Network {
	pathways := d.Pathways
	if len(pathways) == 0 {
		pathways = defaultPathways
	}
	mechanisms := d.Mechanisms
	if len(mechanisms) == 0 {
		mechanisms = defaultMechanisms
	}

	network := Network{
		Nodes: []Node{{ID: target, X: 0, Y: 0, Size: 40, Type: "target"}},
		Edges: []Edge{},
	}

	for i, pathway := range pathways {
		angle := 2*math.Pi*float64(i)/float64(len(pathways)) - math.Pi/2
		network.Nodes = append(network.Nodes, Node{
			ID:   pathway,
			X:    2 * math.Cos(angle),
			Y:    2 * math.Sin(angle),
			Size: 25,
			Type: "pathway",
		})
		network.Edges = append(network.Edges, Edge{From: target, To: pathway})
	}

	for i, mechanism := range mechanisms {
		angle := 2*math.Pi*float64(i)/float64(len(mechanisms)) - math.Pi/4
		network.Nodes = append(network.Nodes, Node{
			ID:   mechanism,
			X:    3.5 * math.Cos(angle),
			Y:    3.5 * math.Sin(angle),
			Size: 20,
			Type: "mechanism",
		})
		network.Edges = append(network.Edges, Edge{From: pathways[i%len(pathways)], To: mechanism})
	}

	network.Nodes = append(network.Nodes, Node{ID: d.Name, X: 0, Y: 4.5, Size: 35, Type: "indication"})
	for _, mechanism := range mechanisms {
		network.Edges = append(network.Edges, Edge{From: mechanism, To: d.Name})
	}
	return network
}
