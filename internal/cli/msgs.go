package cli

// Command descriptions
const (
	MsgRootShort = "Find packs and the pack that owns a file"
	MsgRootLong  = `packs discovers the packs in a project and answers questions about them.

A pack is a directory matched by one of the configured pack_paths patterns
that contains a package.yml file. Patterns come from packs.yml at the project
root, or default to packs/**. Packs may be nested; a file
belongs to the deepest pack that contains it.`

	MsgListShort = "List all packs"
	MsgListLong  = "List prints every pack in discovery order: pattern by pattern, then depth first by name."

	MsgFindShort   = "Look up packs by name"
	MsgFindLong    = "Find prints each named pack and its path. Names are root-relative directories such as packs/my_pack. Exits non-zero when any name is not a pack."
	MsgFindExample = `  packs find packs/my_pack
  packs find packs/my_pack/ components/api`

	MsgForFileShort   = "Show which pack owns each file"
	MsgForFileLong    = "For-file prints the owning pack of each path, or - when no pack owns it. Relative paths are resolved against the current directory."
	MsgForFileExample = `  packs for-file packs/my_pack/app/models/user.rb
  git diff --name-only | xargs packs for-file`

	MsgConfigShort   = "Show the resolved pack_paths"
	MsgConfigLong    = "Config prints the pack_paths in effect and where they came from: packs.yml (declarative) or the built-in defaults. With --write it creates a packs.yml holding the defaults."
	MsgConfigExample = `  packs config
  packs config --write`

	MsgDocsShort       = "Read documentation topics"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot    = "Project root (default: $PACKS_ROOT, the git root, or the current directory)"
	MsgFlagFormat  = "Output format: auto, term, text, json, yaml or toml"
	MsgFlagWrite   = "Write a default packs.yml to the project root"

	// Status messages
	MsgConfigWritten = "Wrote %s"

	// Error messages
	MsgErrNoCommand  = "no command specified"
	MsgErrConfigFile = "%s already exists"
)

// MsgUsageTemplate is cobra's usage template with bold headings
const MsgUsageTemplate = `{{boldUpper "Usage"}}:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases"}}:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples"}}:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

{{boldUpper "Commands"}}:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{bold (rpad .Name .NamePadding)}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags"}}:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags"}}:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
