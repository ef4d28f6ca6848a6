// Package preflight verifies the host can run an install before anything is
// written to disk: a supported platform, a usable interpreter of a
// supported version, and the venv and ensurepip modules.
package preflight
