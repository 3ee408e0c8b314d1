package game

import (
	"fmt"
	"strconv"
	"strings"

	"goban/internal/domain/board"
	"goban/internal/domain/sgf"
)

// SGF renders the game record in FF[4] format. Passes become moves
// with an empty value.
func (g *Game) SGF() string {
	root := &sgf.GameTree{
		Nodes: []sgf.Node{
			{
				Properties: map[string][]string{
					"FF": {"4"},
					"GM": {"1"},
					"SZ": {strconv.Itoa(g.board.Size())},
					"GN": {g.name},
					"PB": {g.blackName},
					"PW": {g.whiteName},
					"DT": {g.createdAt.Format("2006-01-02")},
				},
			},
		},
	}
	if g.result != "" {
		root.Nodes[0].Properties["RE"] = []string{g.result}
	}
	for _, rec := range g.history {
		prop := "B"
		if rec.move.Color == board.White {
			prop = "W"
		}
		value := ""
		if !rec.move.Pass {
			value = sgfCoord(rec.move.Point, g.board.Size())
		}
		root.Nodes = append(root.Nodes, sgf.Node{
			Properties: map[string][]string{prop: {value}},
		})
	}
	return SerializeSGF(&sgf.SGF{Root: root})
}

// sgfCoord writes a point as two letters: the column left to right and
// the row counted from the top edge, both starting at "a".
func sgfCoord(p board.Point, size int) string {
	return string([]byte{byte('a' + p.Col), byte('a' + size - 1 - p.Row)})
}

func SerializeSGF(s *sgf.SGF) string {
	var builder strings.Builder
	builder.WriteString("(")
	serializeGameTree(&builder, s.Root)
	builder.WriteString(")")
	return builder.String()
}

// sgfKeyOrder fixes the property order inside a node; anything else
// follows in map order.
var sgfKeyOrder = []string{"FF", "GM", "SZ", "GN", "PB", "PW", "DT", "RE", "KM", "RU", "C", "B", "W"}

func serializeGameTree(builder *strings.Builder, tree *sgf.GameTree) {
	for _, node := range tree.Nodes {
		builder.WriteString(";")

		used := make(map[string]bool)
		for _, key := range sgfKeyOrder {
			if values, ok := node.Properties[key]; ok {
				used[key] = true
				for _, v := range values {
					fmt.Fprintf(builder, "%s[%s]", key, v)
				}
			}
		}
		for key, values := range node.Properties {
			if used[key] {
				continue
			}
			for _, v := range values {
				fmt.Fprintf(builder, "%s[%s]", key, v)
			}
		}
	}

	for _, child := range tree.Children {
		builder.WriteString("(")
		serializeGameTree(builder, child)
		builder.WriteString(")")
	}
}
