package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/smoothview/internal/cli/cmd/utils"
	"github.com/matjam/smoothview/internal/ipc"
	"github.com/spf13/cobra"
)

func NewLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <image>",
		Short: "Show an image in the daemon",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path, err := utils.AbsPath(args[0])
			if err != nil {
				log.Fatalf("Invalid path: %v", err)
			}

			response, err := ipc.SendLoad(path)
			if err != nil {
				log.Fatalf("Failed to send 'load' command: %v", err)
			}
			log.Info(response.Message)
		},
	}
}
