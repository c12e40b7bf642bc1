// Package treetidy defines the public types shared by the treetidy tools:
// the duplicate finder data model, placeholder scan results, sentinel errors
// with their exit codes, and the Logger interface.
package treetidy
