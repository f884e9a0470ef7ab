// Command figdemo renders sample figures with the fig library.
package main

import (
	"flag"
	"log"

	"github.com/gogpu/fig"
)

func main() {
	var (
		width  = flag.Int("width", 200, "image width")
		height = flag.Int("height", 200, "image height")
	)
	flag.Parse()

	circle := fig.Circle{Center: fig.Pt(50, 50), Radius: 45, Color: fig.Red}
	mixed := fig.Mix{
		First:  circle,
		Second: fig.Rectangle{Min: fig.Pt(40, 40), Max: fig.Pt(90, 110), Color: fig.Blue},
	}

	outputs := []struct {
		name   string
		figure fig.Figure
	}{
		{"circle.png", circle},
		{"mix.png", mixed},
		{"mix_moved.bmp", mixed.Move(60, 30)},
	}

	for _, out := range outputs {
		pm := fig.Render(out.figure, *width, *height, fig.WithWorkers(0))
		if err := pm.WriteFile(out.name); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Saved %s (%dx%d)\n", out.name, *width, *height)
	}
}
