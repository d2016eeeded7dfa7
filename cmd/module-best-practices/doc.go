// Command module-best-practices shows the bundled "module best
// practices" guide, a set of conventions for authoring small, composable
// npm modules.
//
// Run it with no arguments to read the guide:
//
//	module-best-practices
//
// The document is forwarded byte for byte into your pager ($PAGER,
// falling back to less, then more). When stdout is not a terminal the
// guide is written straight through instead, so redirecting and piping
// behave the way you would expect:
//
//	module-best-practices > guide.md
//	module-best-practices | grep -A3 semver
//
// Exit status is 0 once the pager finishes or the user quits it, and
// non-zero only when the guide cannot be opened at all, with the reason
// on stderr.
//
// Auxiliary subcommands:
//
//   - completion [bash|zsh|fish|powershell] generates shell completion
//     scripts.
//   - gen-docs <dir> writes a Markdown reference file per command, for
//     publishing CLI docs.
//
// The guide ships inside the binary; the command reads nothing from the
// working directory and writes nothing except to its own stdout and
// stderr.
package main
