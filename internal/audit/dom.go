package audit

import (
	"strings"

	"golang.org/x/net/html"
)

// walk visits every node in the tree in document order
func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

// findAll returns every element node matching one of the given tag names,
// in document order
func findAll(root *html.Node, tags ...string) []*html.Node {
	var nodes []*html.Node
	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		for _, tag := range tags {
			if n.Data == tag {
				nodes = append(nodes, n)
				return
			}
		}
	})
	return nodes
}

// findFirst returns the first element with the given tag name
func findFirst(root *html.Node, tag string) *html.Node {
	matches := findAll(root, tag)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

// findMeta returns the meta element whose name attribute matches
func findMeta(root *html.Node, name string) *html.Node {
	for _, meta := range findAll(root, "meta") {
		if attr(meta, "name") == name {
			return meta
		}
	}
	return nil
}

// findLabelFor returns the label element bound to the given input id
func findLabelFor(root *html.Node, id string) *html.Node {
	for _, label := range findAll(root, "label") {
		if attr(label, "for") == id {
			return label
		}
	}
	return nil
}

// lookupAttr returns an attribute value and whether it is present
func lookupAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// attr returns an attribute value, empty when absent
func attr(n *html.Node, key string) string {
	value, _ := lookupAttr(n, key)
	return value
}

// countWithAttr counts elements carrying a non-empty attribute
func countWithAttr(root *html.Node, key string) int {
	count := 0
	walk(root, func(n *html.Node) {
		if n.Type == html.ElementNode && attr(n, key) != "" {
			count++
		}
	})
	return count
}

// text returns the concatenated text content of a node
func text(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	})
	return sb.String()
}
