// Package ui holds report styling and terminal detection shared by the
// command line tools.
package ui
