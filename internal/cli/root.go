/*
Copyright © 2025 Nathan Ollerenshaw <chrome@stupendous.net>
*/
package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/matjam/smoothview"
	"github.com/matjam/smoothview/internal/cli/cmd"
	"github.com/matjam/smoothview/internal/cli/cmd/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "smoothview",
	Short: "A zoomable image viewport daemon",
	Long: `Smoothview keeps an image in a zoomable, pannable viewport and takes
zoom, pan and resize commands over a unix socket. Snapshots of the
viewport can be written to PNG files.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("debug") {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if v, err := cmd.Flags().GetBool("show-config"); err == nil && v {
			log.Infof("Using config file: %v", viper.ConfigFileUsed())
			log.Infof("All settings:")
			utils.PrintJSONColored(viper.AllSettings())
			return
		}

		if v, err := cmd.Flags().GetBool("installconfig"); err == nil && v {
			utils.InstallDefaultConfig()
			return
		}

		if v, err := cmd.Flags().GetBool("version"); err == nil && v {
			log.Info(versionBanner())
			return
		}

		cmd.Help()
	},
}

func versionBanner() string {
	babyBlue := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("76"))

	return babyBlue.Render("smoothview") + " version " +
		green.Render(strings.Trim(smoothview.Version, "\n\r ")) + " © 2025 " +
		yellow.Render("Nathan Ollerenshaw")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	RegisterFlags(rootCmd)

	rootCmd.AddCommand(
		cmd.NewStartCmd(),
		cmd.NewStopCmd(),
		cmd.NewStatusCmd(),
		cmd.NewLoadCmd(),
		cmd.NewUnloadCmd(),
		cmd.NewZoomCmd(),
		cmd.NewPanCmd(),
		cmd.NewResetCmd(),
		cmd.NewFullCmd(),
		cmd.NewResizeCmd(),
		cmd.NewSnapshotCmd(),
		cmd.NewGenManCmd(rootCmd),
	)
}
