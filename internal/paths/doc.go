// Package paths resolves where venvlink keeps environments and where it
// publishes links. Everything here is a pure function of its inputs: the home
// directory is looked up once by the caller and passed in explicitly.
package paths
