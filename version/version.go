package version

// VERSION is overwritten at build time through -ldflags.
var VERSION = "dev"
