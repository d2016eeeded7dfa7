package main

// Version is stamped at release time via
// -ldflags "-X main.Version=...". It backs the --version flag.
var Version = "dev"
