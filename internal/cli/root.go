package cli

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bwillis/packs/internal/version"
	"github.com/bwillis/packs/pkg/config"
	"github.com/bwillis/packs/pkg/errors"
	"github.com/bwillis/packs/pkg/logging"
	"github.com/bwillis/packs/pkg/packs"
	"github.com/bwillis/packs/pkg/ui"
)

// app holds the global flag values of one invocation
type app struct {
	rootDir   string
	format    string
	verbosity int
	renderer  ui.Renderer
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	c := &app{}
	rootCmd := &cobra.Command{
		Use:     "packs",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&c.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&c.rootDir, "root", "", MsgFlagRoot)
	flags.StringVar(&c.format, "format", "auto", MsgFlagFormat)
	_ = rootCmd.MarkPersistentFlagDirname("root")
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return ui.FormatNames, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newListCmd(c))
	rootCmd.AddCommand(newFindCmd(c))
	rootCmd.AddCommand(newForFileCmd(c))
	rootCmd.AddCommand(newConfigCmd(c))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	if tm, err := loadTopics(); err == nil {
		rootCmd.AddCommand(tm.Command(MsgDocsShort))
		tm.InstallHelp(rootCmd)
	}

	return rootCmd
}

// setup applies PACKS_* defaults to flags the user did not set, then
// configures logging and the output renderer.
func (c *app) setup(cmd *cobra.Command) error {
	defaults, err := config.LoadCLIDefaults()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("root") {
		c.rootDir = defaults.Root
	}
	if !flags.Changed("format") {
		c.format = defaults.Format
	}
	if !flags.Changed("verbose") {
		c.verbosity = defaults.Verbose
	}

	logging.SetupLoggerTo(c.verbosity, cmd.ErrOrStderr())
	log.Debug().Str("command", cmd.Name()).Str("root", c.rootDir).Msg("Command started")

	format, err := ui.ParseFormat(c.format)
	if err != nil {
		return err
	}
	c.renderer, err = ui.NewRenderer(format, cmd.OutOrStdout())
	return err
}

// registry builds a snapshot for the selected root
func (c *app) registry() (*packs.Registry, error) {
	return packs.New(packs.Options{
		Root:     c.rootDir,
		Settings: packs.CurrentSettings(),
	})
}

// completePackNames provides shell completion for pack names
func (c *app) completePackNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if err := c.setup(cmd); err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	reg, err := c.registry()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var names []string
	for _, name := range reg.Names() {
		if strings.HasPrefix(name, toComplete) {
			names = append(names, name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
