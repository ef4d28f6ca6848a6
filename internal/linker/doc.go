// Package linker publishes an environment's scripts into the shared bin
// directory as symbolic links and takes them down again. A link is only
// ever treated as owned when it is a symlink resolving to the expected
// script; anything else at the destination is left alone.
package linker
