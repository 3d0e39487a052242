// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the render, tree and serve pipelines,
// decoupled from any specific entrypoint like a CLI.
package app
