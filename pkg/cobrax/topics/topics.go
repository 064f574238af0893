// Package topics adds documentation topics to a Cobra application. Topics
// are markdown or text files read from an fs.FS, usually an embedded
// directory, and are shown by a "docs" command and by "help <topic>".
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bwillis/packs/pkg/errors"
	"github.com/bwillis/packs/pkg/logging"
)

// Manager holds the topics loaded from one filesystem
type Manager struct {
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Topic represents a help topic
type Topic struct {
	Name     string
	FilePath string
	Content  string
}

// Options configures the Manager
type Options struct {
	// Extensions is the list of file extensions to consider as topics
	// Defaults to [".txt", ".md"] if not specified
	Extensions []string

	// Renderer for formatting topic content (optional)
	// Defaults to PlainRenderer if not specified
	Renderer Renderer
}

// Load scans fsys for topic files. The topic name is the file name without
// its extension; subdirectories are searched too.
func Load(fsys fs.FS, opts Options) (*Manager, error) {
	m := &Manager{
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".txt", ".md"}
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !m.supported(path.Ext(p)) {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		m.topics[name] = &Topic{Name: name, FilePath: p, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to scan topics")
	}

	logger := logging.GetLogger("topics")
	logger.Trace().Int("count", len(m.topics)).Msg("Loaded topics")
	return m, nil
}

func (m *Manager) supported(ext string) bool {
	for _, valid := range m.extensions {
		if ext == valid {
			return true
		}
	}
	return false
}

// Get retrieves a topic by name. Flag-style names ("--format") also match
// topics named "option-format".
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	if topic, ok := m.topics[name]; ok {
		return topic, true
	}
	topic, ok := m.topics["option-"+name]
	return topic, ok
}

// List returns all topic names, sorted
func (m *Manager) List() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats a topic with the configured renderer
func (m *Manager) Render(t *Topic) string {
	return m.renderer.Render(t.Content, path.Ext(t.FilePath))
}

// WriteIndex writes the list of topics, split into general and option topics
func (m *Manager) WriteIndex(w io.Writer, rootName string) {
	var general, options []string
	for _, name := range m.List() {
		if strings.HasPrefix(name, "option-") {
			options = append(options, strings.TrimPrefix(name, "option-"))
		} else {
			general = append(general, name)
		}
	}

	if len(general)+len(options) == 0 {
		fmt.Fprintln(w, "No help topics available.")
		return
	}

	fmt.Fprintln(w, "Available topics:")
	for _, name := range general {
		fmt.Fprintf(w, "  %s\n", name)
	}
	if len(options) > 0 {
		fmt.Fprintln(w, "\nOption topics:")
		for _, name := range options {
			fmt.Fprintf(w, "  --%s\n", name)
		}
	}
	fmt.Fprintf(w, "\nUse '%s docs <topic>' to read a topic.\n", rootName)
}

// Command returns a "docs [topic]" command. Without arguments it lists the
// topics.
func (m *Manager) Command(short string) *cobra.Command {
	return &cobra.Command{
		Use:   "docs [topic]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return m.List(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				m.WriteIndex(cmd.OutOrStdout(), cmd.Root().Name())
				return nil
			}

			topic, ok := m.Get(args[0])
			if !ok {
				return errors.Newf(errors.ErrNotFound, "no topic named %q", args[0]).
					WithDetail("available", m.List())
			}
			fmt.Fprint(cmd.OutOrStdout(), m.Render(topic))
			return nil
		},
	}
}

// InstallHelp makes "help <topic>" and "<cmd> --help <topic>" show topics,
// falling back to the regular help for anything else.
func (m *Manager) InstallHelp(rootCmd *cobra.Command) {
	original := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if topic, ok := m.Get(args[0]); ok {
				fmt.Fprint(cmd.OutOrStdout(), m.Render(topic))
				return
			}
		}
		original(cmd, args)
	})

	rootCmd.SetHelpCommand(&cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			var completions []string
			for _, c := range rootCmd.Commands() {
				if c.IsAvailableCommand() {
					completions = append(completions, c.Name())
				}
			}
			return append(completions, m.List()...), cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(c *cobra.Command, args []string) {
			if len(args) > 0 {
				if topic, ok := m.Get(args[0]); ok {
					fmt.Fprint(c.OutOrStdout(), m.Render(topic))
					return
				}
			}

			target, _, err := rootCmd.Find(args)
			if target == nil || err != nil {
				fmt.Fprintf(c.OutOrStdout(), "Unknown help topic %q\n", strings.Join(args, " "))
				_ = rootCmd.Usage()
				return
			}
			_ = target.Help()
		},
	})
}
