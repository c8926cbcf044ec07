// Package typeface turns fontopts.Options into measurable faces.
//
// The package has three parts:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF data).
//     It implements fontopts.Typeface, so Options can pin it directly.
//   - Face: lightweight view of a FontSource at the size, scale, tracking,
//     metric overrides and variations an Options asks for.
//   - Resolver: registry of sources that picks a FontSource for an Options
//     by family and style, follows fallbacks and caches the result.
//
// # Example usage
//
//	src, err := typeface.NewFontSourceFromFile("Inter-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	r := typeface.NewResolver(typeface.WithDefaultFamily("Inter"))
//	r.Register(src)
//
//	face, err := r.Resolve(fontopts.NewHeight(16).WithName("Inter"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(face.Size(), face.Metrics().LineHeight(), face.Advance("Hello"))
//
// # Pluggable Parser Backend
//
// Parsing goes through the FontParser interface. The default backend uses
// golang.org/x/image/font/opentype; others can be added with RegisterParser
// and selected with WithParser. Variable-font axes are applied with
// github.com/go-text/typesetting.
package typeface
