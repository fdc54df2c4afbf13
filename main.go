package main

import (
	"devsetup/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// This design cleanly separates the CLI interface (cmd package) from main,
// allowing easier testing, extension, and reuse of the CLI commands.
//
// The devsetup project is an installer that scaffolds development tooling into
// an npm project in the current working directory:
//   - Copies bundled static config files (ESLint, Prettier, commitlint) into the
//     project root, prompting before overwriting anything that already exists
//   - Merges tool-specific npm scripts and one named configuration block
//     (lint-staged or config.commitizen) into the project's package.json,
//     never clobbering entries the user already has unless asked to
//   - Installs Git hooks under .husky/, creating hook files with the husky
//     bootstrap preamble and marking them executable on non-Windows platforms
//   - Persists the mutated package.json exactly once at the end of a run
//
// Error handling strategy:
//   - Fatal preconditions (missing/invalid package.json, missing bundled
//     descriptor, missing .git directory) stop the run with a nonzero exit
//   - Everything else is logged and skipped so a run applies as much of the
//     requested setup as possible; a repeated run is idempotent
//
// Integration points:
//   - Invokes npm/npx synchronously to install or initialize husky when the
//     user agrees, with child process I/O forwarded to the parent streams
//   - Reads yes/no confirmations from standard input; empty input means yes
func main() {
	cmd.Execute()
}
