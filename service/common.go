package service

import "os"

// Version is the CLI version reported by the version command.
const Version = "1.0.0"

// osExit is a variable to allow tests to intercept process exits.
var osExit = os.Exit
