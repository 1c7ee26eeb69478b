package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lifeweeks/pkg/batch"
	"github.com/matzehuels/lifeweeks/pkg/pipeline"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for lifeweeks.

To load completions:

Bash:
  $ source <(lifeweeks completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ lifeweeks completion bash > /etc/bash_completion.d/lifeweeks
  # macOS:
  $ lifeweeks completion bash > $(brew --prefix)/etc/bash_completion.d/lifeweeks

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ lifeweeks completion zsh > "${fpath[1]}/_lifeweeks"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ lifeweeks completion fish | source

  # To load completions for each session, execute once:
  $ lifeweeks completion fish > ~/.config/fish/completions/lifeweeks.fish

PowerShell:
  PS> lifeweeks completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> lifeweeks completion powershell > lifeweeks.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}

// completeFormats completes comma-separated --format values.
func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix := ""
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix = toComplete[:i+1]
	}
	var out []string
	for _, f := range []string{pipeline.FormatPDF, pipeline.FormatSVG, pipeline.FormatPNG, pipeline.FormatJSON} {
		if !strings.Contains(prefix, f+",") {
			out = append(out, prefix+f)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

// completeModes completes --mode values.
func completeModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{
		string(batch.ModeNormal) + "\tone document per person",
		string(batch.ModeToDate) + "\tonly the draw-to-date document",
		string(batch.ModeBoth) + "\tboth documents",
	}, cobra.ShellCompDirectiveNoFileComp
}

// completeListFiles restricts positional completion to birthday lists.
func completeListFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"txt", "csv"}, cobra.ShellCompDirectiveFilterFileExt
}
