package linkdot

import (
	"fmt"
	"os"

	"github.com/arthur-debert/linkdot/internal/version"
	"github.com/arthur-debert/linkdot/pkg/commands"
	"github.com/arthur-debert/linkdot/pkg/logging"
	"github.com/arthur-debert/linkdot/pkg/paths"
	"github.com/arthur-debert/linkdot/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity int
		dryRun    bool
		root      string
	)

	rootCmd := &cobra.Command{
		Use:     "linkdot",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand given; show help but signal incorrect usage
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&root, "root", "", MsgFlagRoot)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// globalOptions reads the persistent flags off the root command and
// warns when the dotfiles root came from the home-directory fallback.
func globalOptions(cmd *cobra.Command, args []string) (commands.Options, error) {
	root, _ := cmd.Root().PersistentFlags().GetString("root")
	dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")

	p, err := paths.New(root)
	if err != nil {
		return commands.Options{}, err
	}
	if p.UsedFallback() {
		fmt.Fprintf(os.Stderr, MsgFallbackWarning, p.DotfilesRoot())
	}

	return commands.Options{
		DotfilesRoot: p.DotfilesRoot(),
		Components:   args,
		DryRun:       dryRun,
	}, nil
}

func isVerbose(cmd *cobra.Command) bool {
	v, _ := cmd.Root().PersistentFlags().GetCount("verbose")
	return v > 0
}

// componentNamesCompletion provides shell completion for component names
func componentNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	opts, err := globalOptions(cmd, nil)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	result, err := commands.List(opts)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var available []string
	for _, c := range result.Components {
		seen := false
		for _, arg := range args {
			if arg == c.Name {
				seen = true
				break
			}
		}
		if !seen {
			available = append(available, c.Name)
		}
	}

	return available, cobra.ShellCompDirectiveNoFileComp
}

func renderReports(cmd *cobra.Command, result *commands.Result, dryRun bool) {
	if dryRun {
		fmt.Println(MsgDryRunNotice)
	}

	statuses := make([]style.ComponentStatus, 0, len(result.Reports))
	for _, r := range result.Reports {
		statuses = append(statuses, style.ComponentStatus{
			Name:     r.Component.DisplayName(),
			State:    r.State,
			Messages: r.Messages,
			Err:      r.Err,
		})
	}

	fmt.Println(style.RenderComponentStatuses(statuses, isVerbose(cmd)))
}

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "install [components...]",
		Short:             MsgInstallShort,
		GroupID:           "core",
		ValidArgsFunction: componentNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := globalOptions(cmd, args)
			if err != nil {
				return err
			}

			log.Info().
				Str("dotfiles_root", opts.DotfilesRoot).
				Bool("dry_run", opts.DryRun).
				Strs("components", args).
				Msg("Installing components")

			result, err := commands.Install(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf(MsgErrInstall, err)
			}

			renderReports(cmd, result, opts.DryRun)
			return nil
		},
	}
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "remove [components...]",
		Short:             MsgRemoveShort,
		GroupID:           "core",
		ValidArgsFunction: componentNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := globalOptions(cmd, args)
			if err != nil {
				return err
			}

			log.Info().
				Str("dotfiles_root", opts.DotfilesRoot).
				Bool("dry_run", opts.DryRun).
				Strs("components", args).
				Msg("Removing components")

			result, err := commands.Remove(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf(MsgErrRemove, err)
			}

			renderReports(cmd, result, opts.DryRun)
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "status [components...]",
		Short:             MsgStatusShort,
		GroupID:           "core",
		ValidArgsFunction: componentNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := globalOptions(cmd, args)
			if err != nil {
				return err
			}

			log.Info().Str("dotfiles_root", opts.DotfilesRoot).Msg("Checking component status")

			result, err := commands.Status(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf(MsgErrStatus, err)
			}

			renderReports(cmd, result, false)
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := globalOptions(cmd, nil)
			if err != nil {
				return err
			}

			log.Info().Str("dotfiles_root", opts.DotfilesRoot).Msg("Listing components")

			result, err := commands.List(opts)
			if err != nil {
				return fmt.Errorf(MsgErrList, err)
			}

			items := make([]style.ComponentItem, 0, len(result.Components))
			for _, c := range result.Components {
				items = append(items, style.ComponentItem{
					Name:         c.Name,
					FriendlyName: c.FriendlyName,
					SourcePath:   c.SourcePath,
					Availability: c.Availability,
				})
			}

			fmt.Println(style.RenderComponentList(items))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("linkdot version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
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
}
