// Command gguidemo drives a small ggui window on the headless display,
// clicks its button and saves the final screen as a PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"os/signal"

	"github.com/gogpu/ggui"
	"github.com/gogpu/ggui/event"
	"github.com/gogpu/ggui/paint"
	"github.com/gogpu/ggui/surface"
	"github.com/gogpu/ggui/widget"
)

func main() {
	var (
		width  = flag.Int("width", 320, "window width")
		height = flag.Int("height", 120, "window height")
		config = flag.String("config", "", "TOML config file")
		output = flag.String("output", "gguidemo.png", "output file")
	)
	flag.Parse()

	cfg := ggui.DefaultConfig()
	if *config != "" {
		var err error
		if cfg, err = ggui.LoadConfig(*config); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	ggui.SetLogger(cfg.NewLogger(os.Stderr))

	d, err := surface.Open("headless", surface.Options{Width: *width, Height: *height})
	if err != nil {
		log.Fatalf("Failed to open display: %v", err)
	}
	headless, ok := d.(*surface.Headless)
	if !ok {
		log.Fatalf("Unexpected display %T", d)
	}
	defer func() { _ = d.Close() }()

	status := &widget.Label{Text: "Press start", Size: 16, Topic: "status"}
	bar := &widget.Progress{Height: 12, Topic: "progress", Speed: 2}
	start := &widget.Button{Text: "Start", Topic: "progress", Value: 1.0}
	root := &widget.Box{
		Padding:     12,
		Background:  paint.Hex("#f4f4f4"),
		Border:      paint.Hex("#c0c0c0"),
		BorderWidth: 1,
		Child: &widget.Flex{
			Direction: widget.Vertical,
			Align:     widget.AlignStretch,
			Gap:       10,
			Children:  []ggui.Widget{status, bar, widget.Row(start)},
		},
	}

	ctrl := ggui.NewMapController()
	w, err := ggui.NewWindow(d, root, ggui.WithConfig(cfg), ggui.WithController(ctrl))
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Configure and draw the first frame so the button has bounds.
	if err := headless.Dispatch(ctx); err != nil {
		log.Fatalf("Dispatch failed: %v", err)
	}
	r := start.Bounds()
	cx, cy := r.X+r.Width/2, r.Y+r.Height/2
	headless.Inject(event.Press(cx, cy))
	headless.Inject(event.Release(cx, cy))
	headless.Inject(event.Sync{Message: ggui.Message{Topic: "status", Value: "Working"}})

	if err := ggui.Run(ctx, d); err != nil {
		log.Fatalf("Run failed: %v", err)
	}

	screen := w.Surface().(*surface.HeadlessSurface).Screen()
	if screen == nil {
		log.Fatalf("Nothing was drawn")
	}
	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	if err := png.Encode(f, screen); err != nil {
		_ = f.Close()
		log.Fatalf("Failed to save: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	s := w.Stats()
	fmt.Printf("Demo saved to %s (%dx%d): %d frames, %d full, %d skipped, %d deferred\n",
		*output, *width, *height, s.Frames, s.FullRepaints, s.Skipped, s.Deferred)
	for _, topic := range ctrl.Topics() {
		v, _ := ctrl.Get(topic)
		fmt.Printf("  %s = %v\n", topic, v)
	}
}
