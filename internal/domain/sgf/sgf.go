// Package sgf models a game record in the Smart Game Format.
package sgf

// Node is one record node: a set of properties such as B[dd], W[] or
// C[comment]. A property may carry several values, like AB[aa][bb].
type Node struct {
	Properties map[string][]string
}

// GameTree is a sequence of nodes for the main line plus any variation
// subtrees.
type GameTree struct {
	Nodes    []Node
	Children []*GameTree
}

// SGF is the root of one record file.
type SGF struct {
	Root *GameTree
}
