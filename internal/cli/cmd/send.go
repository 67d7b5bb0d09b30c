package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/smoothview/internal/geom"
	"github.com/matjam/smoothview/internal/ipc"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

// send delivers c to the daemon and reports the outcome, exiting on
// transport failures.
func send(c ipc.Command) *ipc.Response {
	response, err := ipc.SendCommand(c)
	if err != nil {
		log.Fatalf("Failed to send '%s' command: %v", c.Type, err)
	}

	switch response.Status {
	case ipc.StatusIgnored:
		log.Warnf("%s: %s", c.Type, response.Message)
	default:
		log.Infof("%s: %s", c.Type, response.Message)
	}
	return response
}

// simpleCmd builds a command that sends a fixed request without arguments.
func simpleCmd(use, short string, typ ipc.CommandType) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			send(ipc.Command{Type: typ})
		},
	}
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		f, err := cast.ToFloat64E(a)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// focalFlags adds --x/--y and returns a getter for the resulting focal
// point, nil unless both are given.
func focalFlags(cmd *cobra.Command) func() *geom.Point {
	x := cmd.Flags().Float64("x", 0, "focal point x in viewport pixels")
	y := cmd.Flags().Float64("y", 0, "focal point y in viewport pixels")

	return func() *geom.Point {
		if !cmd.Flags().Changed("x") || !cmd.Flags().Changed("y") {
			return nil
		}
		p := geom.Pt(*x, *y)
		return &p
	}
}

func NewResetCmd() *cobra.Command {
	return simpleCmd("reset", "Fit the image to the viewport again", ipc.CommandReset)
}

func NewFullCmd() *cobra.Command {
	return simpleCmd("full", "Show the image at 100%", ipc.CommandFull)
}

func NewUnloadCmd() *cobra.Command {
	return simpleCmd("unload", "Remove the current image", ipc.CommandUnload)
}
