// Package runner executes external programs synchronously and captures their
// combined stdout and stderr. The venv and pip collaborators run every
// subprocess through the Runner interface so tests can substitute a fake.
package runner
