package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kexlab/ecdh-go/pkg/ecdh"
)

var (
	settingsPath string
	verbose      bool

	settings ecdh.Settings
)

func Execute() error {
	root := &cobra.Command{
		Use:           "ecdh-go",
		Short:         "ECDH key agreement over named ECP groups",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))

			settings = ecdh.Defaults()
			if settingsPath != "" {
				s, err := ecdh.LoadSettings(settingsPath)
				if err != nil {
					return err
				}
				settings = s
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&settingsPath, "settings", "", "TOML settings file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(groupsCmd(), demoCmd())
	return root.Execute()
}
