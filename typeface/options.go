package typeface

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	parserName string
	styleName  string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName,
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// WithStyleName overrides the style name read from the font file.
// Useful for fonts whose subfamily name does not match how the application
// refers to them.
func WithStyleName(style string) SourceOption {
	return func(c *sourceConfig) {
		c.styleName = style
	}
}

// ResolverOption configures a Resolver.
type ResolverOption func(*resolverConfig)

// resolverConfig holds configuration for Resolver.
type resolverConfig struct {
	cacheCapacity int
	defaultFamily string
}

// defaultResolverConfig returns the default resolver configuration.
func defaultResolverConfig() resolverConfig {
	return resolverConfig{
		cacheCapacity: 64, // per shard
	}
}

// WithCacheCapacity sets how many resolved faces each cache shard keeps.
// Values <= 0 select the cache default.
func WithCacheCapacity(n int) ResolverOption {
	return func(c *resolverConfig) {
		c.cacheCapacity = n
	}
}

// WithDefaultFamily sets the family used when Options names none, and as
// the last fallback.
func WithDefaultFamily(family string) ResolverOption {
	return func(c *resolverConfig) {
		c.defaultFamily = family
	}
}
