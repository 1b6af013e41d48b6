package main

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "0.4.0"
