// Package platform wraps the host filesystem operations the linker relies on:
// symlink creation, inspection and removal, plus permission bits. Symlinks are
// only published on Unix-like hosts; Windows is rejected up front by preflight.
package platform
