package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/smoothview/internal/ipc"
	"github.com/matjam/smoothview/internal/types"
	"github.com/spf13/cobra"
)

func NewZoomCmd() *cobra.Command {
	zoomCmd := &cobra.Command{
		Use:   "zoom",
		Short: "Zoom the view",
		Long: `Zoom the view in the running daemon. Zooming out past 100% stops at
100% and holds further zoom out requests off for block_zoom_delay.`,
	}

	wheelCmd := newAmountZoomCmd("wheel <angle>", "Zoom as a mouse wheel delta would (120 per notch)", ipc.CommandWheel)
	wheelCmd.Long = `Zoom as a mouse wheel delta would. Positive angles zoom in, negative
angles zoom out. Put -- before a negative angle so it is not read as a flag.`
	wheelCmd.Example = "  smoothview zoom wheel 120\n  smoothview zoom wheel -- -240"

	zoomCmd.AddCommand(
		newStepZoomCmd("in", "Zoom in one step", ipc.CommandZoomIn),
		newStepZoomCmd("out", "Zoom out one step", ipc.CommandZoomOut),
		newAmountZoomCmd("to <factor>", "Multiply the zoom by factor", ipc.CommandZoom),
		wheelCmd,
		newAmountZoomCmd("pinch <scale>", "Zoom as a pinch gesture would", ipc.CommandPinch),
		newKeyZoomCmd(),
	)
	return zoomCmd
}

func newStepZoomCmd(use, short string, typ ipc.CommandType) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
	}
	focal := focalFlags(cmd)
	cmd.Run = func(cmd *cobra.Command, args []string) {
		send(ipc.Command{Type: typ, Focal: focal()})
	}
	return cmd
}

func newAmountZoomCmd(use, short string, typ ipc.CommandType) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
	}
	focal := focalFlags(cmd)
	trigger := cmd.Flags().String("trigger", "", "input source to emulate (button, key, key-repeat, wheel, pinch, raw)")
	if typ != ipc.CommandZoom {
		cmd.Flags().MarkHidden("trigger")
	}

	cmd.Run = func(cmd *cobra.Command, args []string) {
		v, err := parseFloats(args)
		if err != nil {
			log.Fatalf("Invalid amount %q: %v", args[0], err)
		}
		t := types.ZoomTrigger(*trigger)
		if t != "" && !t.Valid() {
			log.Fatalf("Unknown trigger %q", *trigger)
		}
		send(ipc.Command{
			Type:    typ,
			Amount:  v[0],
			Focal:   focal(),
			Trigger: t,
		})
	}
	return cmd
}

func newKeyZoomCmd() *cobra.Command {
	var repeat bool

	cmd := &cobra.Command{
		Use:       "key <in|out>",
		Short:     "Zoom as the keyboard shortcut would",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"in", "out"},
		Run: func(cmd *cobra.Command, args []string) {
			if args[0] != "in" && args[0] != "out" {
				log.Fatalf("Expected in or out, got %q", args[0])
			}
			send(ipc.Command{Type: ipc.CommandKeyZoom, In: args[0] == "in", AutoRepeat: repeat})
		},
	}
	cmd.Flags().BoolVar(&repeat, "repeat", false, "use the finer auto-repeat step")
	return cmd
}
