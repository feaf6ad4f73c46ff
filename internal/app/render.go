package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/draftforge/draftforge/internal/engine/document"
	"github.com/draftforge/draftforge/internal/engine/locate"
)

// row is one visible line of the outline.
type row struct {
	id    string
	typ   string
	zone  string
	depth int
}

// rebuildRows flattens the document into outline rows in document
// order.
func (a *App) rebuildRows() {
	a.mu.Lock()
	doc := a.doc
	a.mu.Unlock()

	rows := make([]row, 0, len(doc.Content))
	for _, n := range doc.Content {
		rows = appendRows(doc, rows, n, "", 0)
	}

	a.mu.Lock()
	a.rows = rows
	if a.cursor >= len(rows) {
		a.cursor = len(rows) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
	a.mu.Unlock()
}

// appendRows adds a node and its zone children depth-first.
func appendRows(doc *document.Document, rows []row, n document.Node, zone string, depth int) []row {
	id := n.ID()
	rows = append(rows, row{id: id, typ: n.Type, zone: zone, depth: depth})
	for _, key := range locate.ZonesOwnedBy(doc, id) {
		for _, child := range doc.Zone(key) {
			rows = appendRows(doc, rows, child, key.Name, depth+1)
		}
	}
	return rows
}

// render repaints the whole screen.
func (a *App) render() {
	a.rebuildRows()

	a.mu.Lock()
	screen := a.screen
	rows := a.rows
	cursor := a.cursor
	status := a.status
	doc := a.doc
	a.mu.Unlock()
	if screen == nil {
		return
	}

	sel := a.disp.Selection()
	width, height := screen.Size()
	screen.Clear()

	header := fmt.Sprintf("draftforge  %d components  %d selected", len(rows), sel.Len())
	drawLine(screen, 0, width, header, tcell.StyleDefault.Reverse(true))

	visible := height - 2
	top := 0
	if cursor >= visible && visible > 0 {
		top = cursor - visible + 1
	}
	for i := 0; i < visible && top+i < len(rows); i++ {
		r := rows[top+i]
		marker := "  "
		if sel.Has(r.id) {
			marker = "* "
		}
		if top+i == cursor {
			marker = "> "
		}
		label := r.typ
		if r.zone != "" {
			label = fmt.Sprintf("%s/%s", r.zone, r.typ)
		}
		line := fmt.Sprintf("%s%s%s [%s]", marker, indent(r.depth), label, r.id)

		style := tcell.StyleDefault
		if sel.Has(r.id) {
			style = style.Bold(true)
		}
		drawLine(screen, 1+i, width, line, style)
	}

	if status == "" {
		status = "space select  shift+enter range  ctrl+c/x/v/d clipboard  del delete  ctrl+a all  esc clear  q quit"
	}
	drawLine(screen, height-1, width, fmt.Sprintf(" %s  (%d roots)", status, doc.Len()),
		tcell.StyleDefault.Dim(true))

	screen.Show()
}

// drawLine writes one padded line of text.
func drawLine(screen tcell.Screen, y, width int, text string, style tcell.Style) {
	x := 0
	for _, r := range text {
		if x >= width {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}

// indent returns the outline indentation for a depth.
func indent(depth int) string {
	out := ""
	for i := 0; i < depth; i++ {
		out += "  "
	}
	return out
}
