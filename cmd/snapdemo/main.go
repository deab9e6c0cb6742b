// Command snapdemo exercises the capture pipeline end to end: it
// synthesizes a camera frame, applies a color filter, annotates it with
// a stroke and overlay elements, and writes the composed PNG.
//
// Usage:
//
//	snapdemo -filter warm -out snap.png
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/snapkit"
)

func main() {
	var (
		out     = flag.String("out", "snap.png", "output PNG path")
		filter  = flag.String("filter", "warm", "filter name (original, warm, cool, vibrant, vintage, pastel, mono, soft, crisp, fade)")
		width   = flag.Int("width", 640, "frame width in pixels")
		height  = flag.Int("height", 480, "frame height in pixels")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		snapkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(*out, *filter, *width, *height); err != nil {
		fmt.Fprintln(os.Stderr, "snapdemo:", err)
		os.Exit(1)
	}
}

func run(out, filterName string, width, height int) error {
	kind, ok := snapkit.ParseFilterKind(filterName)
	if !ok {
		return fmt.Errorf("unknown filter %q", filterName)
	}

	frame := syntheticFrame(width, height)

	engine := snapkit.NewFilterEngine()
	if _, err := engine.Apply(frame, kind); err != nil {
		return err
	}

	composer := snapkit.NewComposer()
	artifact, err := composer.Compose(snapkit.CompositionRequest{
		Base:         frame,
		DisplayWidth: width,
		Strokes: []snapkit.Stroke{
			{
				Points: []snapkit.Point{
					{X: float64(width) * 0.1, Y: float64(height) * 0.8},
					{X: float64(width) * 0.4, Y: float64(height) * 0.6},
					{X: float64(width) * 0.7, Y: float64(height) * 0.85},
				},
				Color: "#FF3B30",
				Size:  snapkit.BrushMedium,
			},
		},
		Elements: []snapkit.PlacedElement{
			{
				ID: "caption", Type: snapkit.ElementText,
				X: float64(width) / 2, Y: float64(height) * 0.2,
				Scale: 1.5,
				Data: snapkit.TextData{
					Text: "hello from snapkit",
					Style: snapkit.TextStyle{
						Font:  snapkit.FontBold,
						Color: "#FFCC00",
						Mode:  snapkit.StyleBackground,
					},
				},
			},
			{
				ID: "badge", Type: snapkit.ElementSticker,
				X: float64(width) * 0.8, Y: float64(height) * 0.3,
				Scale: 1, Rotation: 15,
				Data: snapkit.StickerData{StickerID: "star"},
			},
			{
				ID: "mood", Type: snapkit.ElementEmoji,
				X: float64(width) * 0.2, Y: float64(height) * 0.35,
				Scale: 1,
				Data:  snapkit.EmojiData{Char: "!"},
			},
		},
	})
	if err != nil {
		return err
	}

	if err := artifact.Pixmap.SavePNG(out); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%dx%d, %d byte PNG, filter %s)\n",
		out, artifact.Width, artifact.Height, len(artifact.PNG), kind)
	return nil
}

// syntheticFrame stands in for a camera capture: a smooth two-axis
// gradient with enough color variety to make the filters visible.
func syntheticFrame(width, height int) *snapkit.Pixmap {
	pm := snapkit.NewPixmap(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pm.SetPixel(x, y, snapkit.RGB(
				float64(x)/float64(width),
				float64(y)/float64(height),
				0.5,
			))
		}
	}
	return pm
}
