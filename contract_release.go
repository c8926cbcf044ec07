//go:build !fontdebug

package fontopts

const debugBuild = false
