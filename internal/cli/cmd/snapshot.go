package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/smoothview/internal/cli/cmd/utils"
	"github.com/matjam/smoothview/internal/ipc"
	"github.com/spf13/cobra"
)

func NewSnapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot <output.png>",
		Short: "Write what the viewport currently shows to a PNG file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path, err := utils.AbsPath(args[0])
			if err != nil {
				log.Fatalf("Invalid path: %v", err)
			}
			send(ipc.Command{Type: ipc.CommandSnapshot, Args: []string{path}})
		},
	}
}
