package lazyscripts

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/lazy-scripts/internal/version"
	"github.com/arthur-debert/lazy-scripts/pkg/config"
	"github.com/arthur-debert/lazy-scripts/pkg/filesystem"
	"github.com/arthur-debert/lazy-scripts/pkg/installer"
	"github.com/arthur-debert/lazy-scripts/pkg/logging"
	"github.com/arthur-debert/lazy-scripts/pkg/paths"
	"github.com/arthur-debert/lazy-scripts/pkg/shellrc"
	"github.com/arthur-debert/lazy-scripts/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity int
		format    string
	)

	rootCmd := &cobra.Command{
		Use:     "lazy-scripts",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}
			return runInstall(cmd, outFormat)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&format, "format", "auto", MsgFlagFormat)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetVersionTemplate(fmt.Sprintf(MsgVersionFormat, version.Version, version.Commit, version.Date))

	rootCmd.AddCommand(newListCmd(&format))
	rootCmd.AddCommand(newKeysCmd(&format))
	rootCmd.AddCommand(newSnippetCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// setup loads the config file and resolves paths, warning on stderr when the
// working directory had to be used as the scripts directory.
func setup(cmd *cobra.Command) (config.Config, paths.Paths, error) {
	cfg, err := config.Load(paths.ConfigFilePath())
	if err != nil {
		return config.Config{}, nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	p, err := paths.New(paths.Options{
		ScriptsDir:      cfg.ScriptsDir,
		ApplicationsDir: cfg.ApplicationsDir,
	})
	if err != nil {
		return config.Config{}, nil, fmt.Errorf(MsgErrInitPaths, err)
	}

	if p.UsedFallback() {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), MsgFallbackWarning, p.ScriptsDir())
	}
	log.Debug().Str("paths", fmt.Sprint(p)).Msg("Paths resolved")

	return cfg, p, nil
}

func runInstall(cmd *cobra.Command, format ui.Format) error {
	cfg, p, err := setup(cmd)
	if err != nil {
		return err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf(MsgErrHomeDir, err)
	}

	reporter := ui.NewReporter(cmd.OutOrStdout(), format)
	result, err := installer.Run(installer.Options{
		FS:        filesystem.NewOS(),
		Paths:     p,
		Config:    cfg,
		ShellPath: os.Getenv("SHELL"),
		HomeDir:   home,
		Reporter:  reporter,
	})
	if err != nil {
		return fmt.Errorf(MsgErrInstall, err)
	}

	reporter.Summary(result)
	return nil
}

func newListCmd(format *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Long:  MsgListLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := ui.ParseFormat(*format)
			if err != nil {
				return err
			}

			cfg, p, err := setup(cmd)
			if err != nil {
				return err
			}

			log.Info().Str("scripts_dir", p.ScriptsDir()).Msg("Listing scripts")

			scripts, err := installer.Scan(filesystem.NewOS(), p.ScriptsDir(), cfg, nil)
			if err != nil {
				return fmt.Errorf(MsgErrList, err)
			}
			if len(scripts) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgNoScriptsFound, p.ScriptsDir())
				return nil
			}

			ui.RenderScripts(cmd.OutOrStdout(), scripts, outFormat)
			return nil
		},
	}
}

func newKeysCmd(format *string) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: MsgKeysShort,
		Long:  MsgKeysLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := ui.ParseFormat(*format)
			if err != nil {
				return err
			}
			outFormat = ui.Resolve(outFormat, cmd.OutOrStdout())

			_, err = fmt.Fprint(cmd.OutOrStdout(), ui.RenderMarkdown(ui.KeysReference(), outFormat, 0))
			return err
		},
	}
}

func newSnippetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snippet",
		Short: MsgSnippetShort,
		Long:  MsgSnippetLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, p, err := setup(cmd)
			if err != nil {
				return err
			}

			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf(MsgErrHomeDir, err)
			}

			profile, err := shellrc.Lookup(os.Getenv("SHELL"), home, p.BinDir())
			if err != nil {
				// unsupported shells still get the generic export line
				log.Warn().Err(err).Msg("Login shell is not supported")
				profile = shellrc.Profile{ExportLine: shellrc.ExportLine(p.BinDir())}
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), strings.TrimPrefix(profile.Section(), "\n"))
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}
}
