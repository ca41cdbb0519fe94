package web

import "embed"

// StaticFS holds the embedded static assets (stylesheet and gallery script).
//
//go:embed static/*
var StaticFS embed.FS

// AboutMarkdown is the default biography shown in the about section.
//
//go:embed content/about.md
var AboutMarkdown string

// sandboxMarkdown seeds the mathematics sandbox.
//
//go:embed content/sandbox.md
var sandboxMarkdown string
