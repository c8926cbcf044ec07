//go:build fontdebug

package fontopts

// debugBuild enables strict contracts by default.
const debugBuild = true
