package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bwillis/packs/internal/version"
	"github.com/bwillis/packs/pkg/config"
	"github.com/bwillis/packs/pkg/errors"
	"github.com/bwillis/packs/pkg/filesystem"
	"github.com/bwillis/packs/pkg/logging"
	"github.com/bwillis/packs/pkg/packs"
	"github.com/bwillis/packs/pkg/paths"
	"github.com/bwillis/packs/pkg/types"
)

func packInfos(ps []types.Pack) []types.PackInfo {
	infos := make([]types.PackInfo, 0, len(ps))
	for _, p := range ps {
		infos = append(infos, types.NewPackInfo(p))
	}
	return infos
}

func newListCmd(c *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Long:    MsgListLong,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.registry()
			if err != nil {
				return err
			}

			return c.renderer.RenderResult(&types.ListPacksResult{
				Root:  reg.Root(),
				Packs: packInfos(reg.All()),
			})
		},
	}
}

func newFindCmd(c *app) *cobra.Command {
	return &cobra.Command{
		Use:               "find NAME...",
		Short:             MsgFindShort,
		Long:              MsgFindLong,
		Example:           MsgFindExample,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: c.completePackNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.registry()
			if err != nil {
				return err
			}

			selected, missing := reg.Select(args)
			if err := c.renderer.RenderResult(&types.FindResult{
				Packs:   packInfos(selected),
				Missing: missing,
			}); err != nil {
				return err
			}

			if len(missing) > 0 {
				return errors.New(errors.ErrPackNotFound, "pack(s) not found").
					WithDetail("notFound", missing)
			}
			return nil
		},
	}
}

func newForFileCmd(c *app) *cobra.Command {
	return &cobra.Command{
		Use:     "for-file PATH...",
		Short:   MsgForFileShort,
		Long:    MsgForFileLong,
		Example: MsgForFileExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.for-file")

			reg, err := c.registry()
			if err != nil {
				return err
			}

			targets := make([]string, len(args))
			for i, arg := range args {
				targets[i] = arg
				if !filepath.IsAbs(arg) {
					if abs, err := filepath.Abs(arg); err == nil {
						targets[i] = abs
					}
				}
			}

			owners := reg.ForFiles(targets)
			result := &types.ForFileResult{Files: make([]types.FileOwner, 0, len(args))}
			for i, arg := range args {
				owner := types.FileOwner{File: arg}
				if pack, ok := owners[targets[i]]; ok {
					owner.Pack = pack.Name
					owner.Owned = true
				}
				logger.Trace().Str("file", arg).Str("pack", owner.Pack).Msg("Resolved owner")
				result.Files = append(result.Files, owner)
			}

			return c.renderer.RenderResult(result)
		},
	}
}

func newConfigCmd(c *app) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Example: MsgConfigExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := paths.ProjectRoot(c.rootDir)
			if err != nil {
				return err
			}
			fsys := filesystem.NewOS()

			if write {
				file, err := writeDefaultConfig(fsys, root)
				if err != nil {
					return err
				}
				if err := c.renderer.RenderMessage(fmt.Sprintf(MsgConfigWritten, file)); err != nil {
					return err
				}
			}

			cfg, err := config.Resolve(fsys, root, packs.CurrentSettings())
			if err != nil {
				return err
			}

			return c.renderer.RenderResult(&types.ConfigResult{
				Root:      root,
				Source:    string(cfg.Source),
				File:      cfg.File,
				PackPaths: cfg.PackPaths,
			})
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}

// writeDefaultConfig creates packs.yml under root, refusing to overwrite
func writeDefaultConfig(fsys types.FS, root string) (string, error) {
	file := filepath.Join(root, paths.ConfigFile)

	_, err := fsys.Stat(file)
	switch {
	case err == nil:
		return "", errors.Newf(errors.ErrAlreadyExists, MsgErrConfigFile, file).
			WithDetail("file", file)
	case !stderrors.Is(err, fs.ErrNotExist):
		return "", errors.Wrap(err, errors.ErrFileAccess, "cannot check for existing config").
			WithDetail("file", file)
	}

	if err := fsys.WriteFile(file, config.DefaultFileContent(), 0644); err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, "failed to write config").
			WithDetail("file", file)
	}
	return file, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(packs completion bash)

Zsh:
  $ packs completion zsh > "${fpath[1]}/_packs"

Fish:
  $ packs completion fish | source

PowerShell:
  PS> packs completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return WriteCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}

// WriteCompletion writes the completion script of rootCmd for shell
func WriteCompletion(rootCmd *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return rootCmd.GenBashCompletionV2(w, true)
	case "zsh":
		return rootCmd.GenZshCompletion(w)
	case "fish":
		return rootCmd.GenFishCompletion(w, true)
	case "powershell":
		return rootCmd.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unsupported shell %q", shell).
			WithDetail("supported", []string{"bash", "zsh", "fish", "powershell"})
	}
}
