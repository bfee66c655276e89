// Package version holds the build version of snakez.
package version

// Version is the current release.
var Version = "0.1.0"
