// Package pip builds source specifiers for packages and installs them into a
// virtual environment by running the environment's own pip.
package pip
