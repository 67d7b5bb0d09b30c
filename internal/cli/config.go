package cli

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/matjam/smoothview/internal/viewport"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("smoothview")
		viper.SetConfigType("toml")
		if viper.GetString("config") != "" {
			viper.SetConfigFile(viper.GetString("config"))
		} else {
			viper.AddConfigPath("$HOME/.config/smoothview")
			viper.AddConfigPath("/etc/xdg/smoothview")
		}
	}

	SetDefaults()

	viper.SetEnvPrefix("smoothview")
	viper.AutomaticEnv() // read environment variables that match

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		log.Debug("no config file found, using defaults")
		return
	}
	cobra.CheckErr(err)
}

// SetDefaults registers the built-in value of every configuration key.
func SetDefaults() {
	d := viewport.DefaultConfig()

	viper.SetDefault("image", "")
	viper.SetDefault("viewport_width", 1280)
	viper.SetDefault("viewport_height", 720)
	viper.SetDefault("background", "#000000")
	viper.SetDefault("interpolate_zoom_level", 200)

	viper.SetDefault("min_zoom", d.MinZoom)
	viper.SetDefault("max_zoom", d.MaxZoom)
	viper.SetDefault("zoom_in_step", d.ZoomInStep)
	viper.SetDefault("zoom_out_step", d.ZoomOutStep)
	viper.SetDefault("repeat_zoom_in_step", d.RepeatInStep)
	viper.SetDefault("repeat_zoom_out_step", d.RepeatOutStep)
	viper.SetDefault("use_zoom_levels", d.UseZoomLevels)
	viper.SetDefault("zoom_levels", d.ZoomLevels)
	viper.SetDefault("invert_zoom", d.InvertZoom)
	viper.SetDefault("keep_zoom", d.KeepZoom)
	viper.SetDefault("show_scrollbars", d.ShowScrollbars)
	viper.SetDefault("upscale_small_images", d.UpscaleSmall)
	viper.SetDefault("block_zoom_delay", d.BlockZoomDelay.Milliseconds())
	viper.SetDefault("pan_anchor", []float64{d.PanAnchor.X, d.PanAnchor.Y})
	viper.SetDefault("pan_step_percent", d.PanStepPercent)

	viper.SetDefault("debug", false)
}
