// Package allcmd implements the "all" action: clean, build, and check in a
// fixed order with halt-on-first-failure semantics.
package allcmd
