// Package cmdregistry defines a lightweight action registry used by the CLI
// entrypoint. It maps action names to handler functions that accept a shared
// Context payload, so individual action implementations can live in separate
// packages while main.go stays focused on argument parsing.
package cmdregistry
