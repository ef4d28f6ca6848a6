// Package venv creates Python virtual environments through the interpreter's
// built-in venv module. Creation always clears an existing directory first,
// so reinstalling a package starts from an empty environment.
package venv
