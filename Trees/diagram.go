package Trees

import (
	"fmt"
	"strings"
)

// diagram draws the subtree rooted at n sideways: the right subtree above its parent,
// the left one below. A node with a single child shows the missing one as nil.
//
//	┌──5
//	4
//	└──3
func diagram[T any, N binaryNode[T, N]](n N) string {
	var b strings.Builder
	writeDiagram[T](&b, n, "", "", "")
	return b.String()
}

func writeDiagram[T any, N binaryNode[T, N]](b *strings.Builder, n N, top, root, bottom string) {
	var null N
	if n == null {
		b.WriteString(root)
		b.WriteString("nil\n")
		return
	}
	l, r := n.Left(), n.Right()
	if l == null && r == null {
		fmt.Fprintf(b, "%s%v\n", root, n.Value())
		return
	}
	writeDiagram[T](b, r, top+" ", top+"┌──", top+"│ ")
	fmt.Fprintf(b, "%s%v\n", root, n.Value())
	writeDiagram[T](b, l, bottom+"│ ", bottom+"└──", bottom+" ")
}
