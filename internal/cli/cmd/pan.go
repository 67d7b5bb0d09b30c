package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/smoothview/internal/ipc"
	"github.com/matjam/smoothview/internal/types"
	"github.com/spf13/cobra"
)

func NewPanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pan <dx> <dy> | pan <left|right|up|down>",
		Short: "Move the view",
		Long: `Move the view by a pixel delta, or by one pan step in a direction.
Panning only applies along axes where the image is larger than the viewport.
Use -- before negative deltas, as in "pan -- -20 0".`,
		Args: cobra.RangeArgs(1, 2),
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 1 {
				dir := types.PanDirection(args[0])
				if !dir.Valid() {
					log.Fatalf("Unknown direction %q", args[0])
				}
				send(ipc.Command{Type: ipc.CommandPanStep, Direction: dir})
				return
			}

			v, err := parseFloats(args)
			if err != nil {
				log.Fatalf("Invalid pan delta: %v", err)
			}
			send(ipc.Command{Type: ipc.CommandPan, X: v[0], Y: v[1]})
		},
	}
}

func NewResizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resize <width> <height>",
		Short: "Resize the viewport",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			v, err := parseFloats(args)
			if err != nil {
				log.Fatalf("Invalid size: %v", err)
			}
			send(ipc.Command{Type: ipc.CommandResize, X: v[0], Y: v[1]})
		},
	}
}
