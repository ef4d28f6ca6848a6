// Package scripts discovers the genuine program entry points in a virtual
// environment's executable directory. The environment's own management files
// (activation scripts, pip, the interpreter) are filtered out by a small
// ordered set of structured exclusion rules rather than raw glob patterns, so
// each rule's false positives and negatives can be tested in isolation.
package scripts
