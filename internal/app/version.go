package app

// Version is set at build time with -ldflags "-X github.com/footprint-tools/argtree/internal/app.Version=...".
var Version = "dev"
