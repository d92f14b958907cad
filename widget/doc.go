// Package widget provides the stock widgets of ggui: solid rectangles,
// text labels, decorated boxes, row and column layouts, buttons and an
// animated progress bar.
//
// Widgets keep their state in plain fields. State that changes while the
// window runs arrives through Sync, usually as a message on the widget's
// Topic, so the window learns how much to repaint:
//
//	status := &widget.Label{Text: "idle", Topic: "status"}
//	root := widget.Column(
//		widget.Padded(status, 8),
//		&widget.Button{Text: "Go", Topic: "status", Value: "running"},
//	)
//
// A button posts its message when clicked; the label observes it in the
// same frame and redraws only itself.
package widget
