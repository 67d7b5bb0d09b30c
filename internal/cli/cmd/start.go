package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/matjam/smoothview/internal/cli/cmd/utils"
	"github.com/matjam/smoothview/internal/imagestore"
	"github.com/matjam/smoothview/internal/ipc"
	"github.com/matjam/smoothview/internal/viewport"
	"github.com/sevlyar/go-daemon"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the smoothview daemon",
		Long: `Starts the viewport daemon and serves commands on its unix socket.
With --background the daemon detaches and logs to ~/.local/share/smoothview.`,
		Run: func(cmd *cobra.Command, args []string) {
			if background, _ := cmd.Flags().GetBool("background"); background {
				dctx := daemonContext()
				child, err := dctx.Reborn()
				if err != nil {
					log.Fatalf("Failed to start in background: %v", err)
				}
				if child != nil {
					log.Infof("smoothview started in background, PID %d", child.Pid)
					return
				}
				defer dctx.Release()
			}

			StartManager()
		},
	}
}

func daemonContext() *daemon.Context {
	runDir := os.Getenv("XDG_RUNTIME_DIR")
	if runDir == "" {
		runDir = os.TempDir()
	}

	return &daemon.Context{
		PidFileName: filepath.Join(runDir, "smoothview.pid"),
		PidFilePerm: 0644,
		WorkDir:     "/",
		Umask:       027,
		Env:         append(os.Environ(), "BACKGROUND_PROCESS=1"),
	}
}

func StartManager() {
	log.Infof("StartManager() started in PID: %d", os.Getpid())

	if os.Getenv("BACKGROUND_PROCESS") == "1" {
		setupRotatingLogger()
	}

	if _, err := ipc.SendStatus(); err == nil {
		log.Infof("smoothview is already running, exiting")
		os.Exit(0)
	}

	cfg, err := utils.ViewportConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	renderer, err := utils.NewRenderer()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	size := utils.ViewportSize()
	ctrl, err := viewport.NewController(cfg, size)
	if err != nil {
		log.Fatalf("Failed to create viewport: %v", err)
	}
	log.Infof("Viewport %vx%v, zoom %v..%v", size.W, size.H, cfg.MinZoom, cfg.MaxZoom)

	manager := ipc.NewManager(ctrl, imagestore.New(), renderer)

	go func() {
		log.Infof("Starting socket server on %s", ipc.SocketPath())
		ipc.Start(manager)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if image := utils.CanonicalPath(viper.GetString("image")); image != "" {
		go func() {
			response, err := manager.Execute(ctx, ipc.Command{Type: ipc.CommandLoad, Args: []string{image}})
			if err != nil || response.Status != ipc.StatusOK {
				log.Errorf("Failed to load initial image %s: %v %s", image, err, response.Message)
			}
		}()
	}

	manager.Run(ctx)

	os.Remove(ipc.SocketPath())
	log.Infof("smoothview exited")
}

func setupRotatingLogger() {
	home := os.Getenv("HOME")
	logDir := filepath.Join(home, ".local", "share", "smoothview")
	logPath := filepath.Join(logDir, "smoothview.log")

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Fatalf("failed to create log directory: %v", err)
	}

	writer, err := rotatelogs.New(
		logPath+".%Y%m%d%H%M",
		rotatelogs.WithLinkName(logPath),
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationSize(10*1024*1024),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		log.Fatalf("failed to configure log rotation: %v", err)
	}

	log.SetOutput(writer)
	if !viper.GetBool("debug") {
		log.SetLevel(log.InfoLevel)
	}
}
