package main

import "errors"

// Exit codes for the paperscreen CLI.
const (
	ExitSuccess = 0 // Success
	ExitError   = 1 // General error (invalid arguments, network or parse failure)
	ExitNoMatch = 2 // Search or filter produced no papers
)

// errNoMatch signals the distinguished no-match exit. The command prints its
// own explanation before returning it; main maps it to ExitNoMatch without
// an error banner.
var errNoMatch = errors.New("no matching papers")
