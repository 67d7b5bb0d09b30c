package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/smoothview/internal/cli/cmd/utils"
	"github.com/matjam/smoothview/internal/ipc"
	"github.com/spf13/cobra"
)

func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get smoothview status",
		Long:  `Returns the current status of the smoothview process and its viewport geometry.`,
		Run: func(cmd *cobra.Command, args []string) {
			response, err := ipc.SendStatus()
			if err != nil {
				log.Errorf("Error requesting status: %v", err)
				return
			}

			utils.PrintJSONColored(response)
		},
	}
}
