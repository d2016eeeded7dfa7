package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"

	modulebestpractices "github.com/mattdesl/module-best-practices"
	"github.com/mattdesl/module-best-practices/internal/pager"
)

const rootLongDesc = `
module-best-practices shows the bundled "module best practices" guide, a
set of conventions for authoring small, composable npm modules, in your
terminal pager.

The guide travels inside the binary, so the command works the same from
any directory and takes no arguments. Display honors $PAGER and falls
back to less, then more; when stdout is not a terminal the guide is
written straight through instead, so piping it into other tools works.
`

// cliApp carries the process surfaces the command writes to, plus the
// document source, which tests swap out to reach the failure paths.
type cliApp struct {
	stdout io.Writer
	stderr io.Writer
	open   func() (io.ReadCloser, error)
}

func run(argv []string, stdout, stderr io.Writer) error {
	app := &cliApp{stdout: stdout, stderr: stderr, open: modulebestpractices.Open}
	cmd := newRootCmd(app)
	if argv == nil {
		// cobra reads os.Args when given nil; always run with exactly
		// what we were handed.
		argv = []string{}
	}
	cmd.SetArgs(argv)
	return cmd.Execute()
}

func newRootCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "module-best-practices",
		Short:         "Read the module best practices guide in your terminal",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(app.stdout)
	cmd.SetErr(app.stderr)
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return app.display(ctx)
	}

	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

// display opens the guide and hands the stream to the pager. The
// command shows its one document no matter what it was invoked with.
func (app *cliApp) display(ctx context.Context) error {
	doc, err := app.open()
	if err != nil {
		return err
	}
	defer doc.Close()
	return pager.New(app.stdout, app.stderr).Page(ctx, doc)
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const longDesc = `Generate a shell completion script for module-best-practices.

Evaluate the output in your shell, for example:

  module-best-practices completion bash > /etc/bash_completion.d/module-best-practices
  module-best-practices completion zsh > "${fpath[1]}/_module-best-practices"
  module-best-practices completion fish | source
  module-best-practices completion powershell | Out-String | Invoke-Expression
`
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.ExactValidArgs(1),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write one Markdown reference file per command into the given directory,
for publishing CLI docs alongside the guide.

Example:

  module-best-practices gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
