// Package scrape fetches a rendered game page and extracts the raw log
// rows the parser consumes.
package scrape

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/jdgunter/gaia-project-scraper/pkg/model"
)

// logContainerClasses identify the div wrapping the game-log table on the
// game page.
var logContainerClasses = []string{"col-12", "order-last", "mt-4"}

// ErrLogNotFound means the page HTML held no recognizable game-log table.
var ErrLogNotFound = errors.New("game log table not found in page")

// ExtractRows locates the game-log table in rendered page HTML and turns
// its rows into raw rows. The page's latest-first order is preserved;
// reversing into chronological order is the log builder's job.
func ExtractRows(pageHTML string) ([]model.RawRow, error) {
	doc, err := html.Parse(strings.NewReader(pageHTML))
	if err != nil {
		return nil, fmt.Errorf("parse page html: %w", err)
	}

	container := findDivWithClasses(doc, logContainerClasses)
	if container == nil {
		return nil, ErrLogNotFound
	}
	table := findElement(container, "table")
	if table == nil {
		return nil, ErrLogNotFound
	}

	var rows []model.RawRow
	for _, tr := range findAll(table, "tr") {
		var cells []model.RawCell
		for _, td := range findAll(tr, "td") {
			cells = append(cells, cellOf(td))
		}
		rows = append(rows, model.RawRow{Cells: cells})
	}
	return rows, nil
}

// cellOf converts a td node into a raw cell: a td holding nested divs
// becomes an item list (one entry per div), anything else a text cell.
func cellOf(td *html.Node) model.RawCell {
	divs := findAll(td, "div")
	if len(divs) == 0 {
		return model.RawCell{Text: nodeText(td)}
	}
	items := make([]string, 0, len(divs))
	for _, d := range divs {
		items = append(items, nodeText(d))
	}
	return model.RawCell{Items: items}
}

// findDivWithClasses returns the first div carrying all the given class
// tokens, depth-first.
func findDivWithClasses(n *html.Node, classes []string) *html.Node {
	if n.Type == html.ElementNode && n.Data == "div" && hasClasses(getAttr(n, "class"), classes) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findDivWithClasses(c, classes); found != nil {
			return found
		}
	}
	return nil
}

// findElement returns the first descendant element with the given tag,
// depth-first.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// findAll collects every descendant element with the given tag, in
// document order. The root itself is not considered.
func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			out = append(out, c)
			continue
		}
		out = append(out, findAll(c, tag)...)
	}
	return out
}

// nodeText concatenates the text content of a node's subtree.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// hasClasses reports whether a class attribute contains every wanted
// class token.
func hasClasses(attr string, want []string) bool {
	have := make(map[string]bool)
	for _, c := range strings.Fields(attr) {
		have[c] = true
	}
	for _, w := range want {
		if !have[w] {
			return false
		}
	}
	return true
}
