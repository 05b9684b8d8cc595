// Package cmd provides CLI commands for the renamer tool.
//
// # Available Commands
//
//   - rename: Print the statements renaming a single table
//   - script: Print the statements for every rename in a rename script
//   - plan: Print the statements for the renames listed in renamer.yaml
//   - dialects: List the supported dialect ids
//
// # Command Structure
//
// Each command is implemented as a separate function that returns a
// *cli.Command, following the urfave/cli/v3 pattern. Commands are provided to
// the fx "commands" group by Module and assembled into the root command by Run.
//
// # Dialect Selection
//
// Commands that generate SQL accept --dialect (-D), which may also be set
// through RENAMER_DIALECT. When neither is given the dialect from renamer.yaml
// is used, and h2 when there is no config file.
//
// # Output
//
// Statements are printed one per line and terminated with ';'. With --write
// (-w) they are stored in <dir>/<version>_rename_tables.sql instead, where dir
// comes from renamer.yaml (db/migrations by default).
package cmd
