// Package lifecycle implements install and uninstall as two linear
// pipelines over the path layout, the environment creator, the package
// installer, script discovery and the linker. Any failing step aborts the
// pipeline; nothing is rolled back, and the next install clears whatever a
// failed one left behind.
package lifecycle
