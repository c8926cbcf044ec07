// Command fontprobe resolves a font descriptor against a set of font files
// and prints the resulting size, metrics and text advance.
//
// Usage:
//
//	fontprobe [flags] [font files...]
//
// Without font files the embedded Go fonts are used.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/fontopts"
	"github.com/gogpu/fontopts/typeface"
)

func main() {
	var (
		family    = flag.String("family", "", "font family name")
		style     = flag.String("style", "", "font style name")
		height    = flag.Float64("height", 0, "font height in application units (ascent+descent)")
		points    = flag.Float64("points", 0, "font height in points (em size); overrides -height")
		tracking  = flag.Float64("tracking", 0, "extra spacing per glyph, as a fraction of the size")
		hscale    = flag.Float64("hscale", 1, "horizontal scale factor")
		fallbacks = flag.String("fallbacks", "", "comma-separated fallback families")
		noFB      = flag.Bool("nofallback", false, "disable fallback")
		legacy    = flag.Bool("legacy", false, "use legacy (hinted) metrics")
		text      = flag.String("text", "Hello, World!", "text to measure")
		verbose   = flag.Bool("v", false, "log resolver decisions")
	)
	var vars []fontopts.Variation
	flag.Func("var", "variation axis setting tag=value, e.g. wght=700 (repeatable)", func(s string) error {
		v, err := parseVariation(s)
		if err != nil {
			return err
		}
		vars = append(vars, v)
		return nil
	})
	flag.Parse()

	if *verbose {
		fontopts.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	sources, err := loadSources(flag.Args())
	if err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	resolver := typeface.NewResolver(typeface.WithDefaultFamily(sources[0].Name()))
	if err := resolver.Register(sources...); err != nil {
		log.Fatalf("Failed to register fonts: %v", err)
	}

	opts := fontopts.NewFamily(*family, *style, fontopts.DefaultHeight).
		WithTracking(float32(*tracking)).
		WithHorizontalScale(float32(*hscale)).
		WithFallbackEnabled(!*noFB).
		WithVariations(vars)
	if *height > 0 {
		opts = opts.WithHeight(float32(*height))
	}
	if *points > 0 {
		opts = opts.WithPointHeight(float32(*points))
	}
	if *fallbacks != "" {
		opts = opts.WithFallbacks(strings.Split(*fallbacks, ","))
	}
	if *legacy {
		opts = opts.WithMetricsKind(fontopts.MetricsLegacy)
	}

	face, err := resolver.Resolve(opts)
	if err != nil {
		log.Fatalf("Failed to resolve %v: %v", opts, err)
	}

	printFace(opts, face, *text)
}

// parseVariation parses "tag=value".
func parseVariation(s string) (fontopts.Variation, error) {
	tagStr, valStr, ok := strings.Cut(s, "=")
	if !ok {
		return fontopts.Variation{}, fmt.Errorf("want tag=value, got %q", s)
	}
	tag, err := fontopts.ParseTag(tagStr)
	if err != nil {
		return fontopts.Variation{}, err
	}
	val, err := strconv.ParseFloat(valStr, 32)
	if err != nil {
		return fontopts.Variation{}, fmt.Errorf("axis %s: %w", tagStr, err)
	}
	return fontopts.Variation{Tag: tag, Value: float32(val)}, nil
}

func loadSources(paths []string) ([]*typeface.FontSource, error) {
	if len(paths) == 0 {
		return embeddedSources()
	}
	sources := make([]*typeface.FontSource, 0, len(paths))
	for _, p := range paths {
		src, err := typeface.NewFontSourceFromFile(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		sources = append(sources, src)
	}
	return sources, nil
}

func embeddedSources() ([]*typeface.FontSource, error) {
	fonts := [][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF, gomono.TTF}
	sources := make([]*typeface.FontSource, 0, len(fonts))
	for _, data := range fonts {
		src, err := typeface.NewFontSource(data)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

func printFace(opts fontopts.Options, face typeface.Face, text string) {
	fmt.Printf("options:  %v\n", opts)
	fmt.Printf("key:      %s (hash %016x)\n", opts.Key(), opts.Hash())

	if multi, ok := face.(*typeface.MultiFace); ok {
		for i, f := range multi.Faces() {
			fmt.Printf("face[%d]:  %s %s\n", i, f.Source().Name(), f.Source().Style())
		}
	} else {
		fmt.Printf("face:     %s %s\n", face.Source().Name(), face.Source().Style())
	}

	m := face.Metrics()
	fmt.Printf("size:     %.2fpt\n", face.Size())
	fmt.Printf("metrics:  ascent %.2f descent %.2f gap %.2f line %.2f\n",
		m.Ascent, m.Descent, m.LineGap, m.LineHeight())
	fmt.Printf("advance:  %.2f for %q\n", face.Advance(text), text)
}
