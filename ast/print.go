package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a human-readable, indented representation of a tree
func Print(w io.Writer, e Expr) {
	printLevel(w, e, 0)
}

func printLevel(w io.Writer, e Expr, level int) {
	indent := strings.Repeat("    ", level)
	if e == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s)", indent, e.Type())

	switch v := e.(type) {
	case List:
		fmt.Fprintf(w, "[%d]\n", len(v))
		for i := range v {
			printLevel(w, v[i], level+1)
		}

	case Lambda:
		fmt.Fprintf(w, " %v\n", v.Params)
		for i := range v.Body {
			printLevel(w, v.Body[i], level+1)
		}

	default:
		fmt.Fprintf(w, ": %s\n", v)
	}
}

// Encode transforms a tree into its text representation
func Encode(e Expr) []byte {
	return []byte(encodeLevel(e))
}

func encodeLevel(e Expr) string {
	if e == nil {
		return ":nil"
	}
	switch v := e.(type) {
	case List:
		nodes := make([]string, 0, len(v))
		for i := range v {
			nodes = append(nodes, encodeLevel(v[i]))
		}
		return fmt.Sprintf("(%s)", strings.Join(nodes, " "))

	case Lambda:
		nodes := make([]string, 0, len(v.Body))
		for i := range v.Body {
			nodes = append(nodes, encodeLevel(v.Body[i]))
		}
		params := fmt.Sprintf("(%s)", strings.Join(v.Params, " "))
		if len(nodes) == 0 {
			return fmt.Sprintf("(lambda %s)", params)
		}
		return fmt.Sprintf("(lambda %s %s)", params, strings.Join(nodes, " "))

	default:
		return v.String()
	}
}
