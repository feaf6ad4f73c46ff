package app

import "github.com/draftforge/draftforge/internal/engine/document"

// SampleDocument returns a small report page used when no document
// file is given. It exercises nesting so every clipboard operation has
// something interesting to act on.
func SampleDocument() *document.Document {
	title := document.NewNode("Heading", "title")
	title.Props["text"] = "Quarterly Report"

	intro := document.NewNode("Text", "intro")
	intro.Props["text"] = "Overview of the quarter."

	summary := document.NewNode("Section", "summary")
	summary.Props["label"] = "Summary"

	revenue := document.NewNode("Table", "revenue")
	revenue.Props["rows"] = []any{
		[]any{"Region", "Revenue"},
		[]any{"North", "1.2M"},
		[]any{"South", "0.9M"},
	}

	note := document.NewNode("Text", "note")
	note.Props["text"] = "Figures are preliminary."

	detail := document.NewNode("Section", "detail")
	detail.Props["label"] = "Detail"

	chart := document.NewNode("Chart", "chart")
	chart.Props["kind"] = "bar"

	footer := document.NewNode("Text", "footer")
	footer.Props["text"] = "Confidential."

	return &document.Document{
		Content: []document.Node{title, intro, summary, detail, footer},
		Zones: map[document.ZoneKey][]document.Node{
			{OwnerID: "summary", Name: "body"}: {revenue, note},
			{OwnerID: "detail", Name: "body"}:  {chart},
			{OwnerID: "detail", Name: "aside"}: {document.NewNode("Text", "aside-note")},
		},
	}
}
