package utils

import (
	"fmt"
	"time"

	"github.com/matjam/smoothview/internal/geom"
	"github.com/matjam/smoothview/internal/render"
	"github.com/matjam/smoothview/internal/viewport"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// ViewportConfig builds the controller configuration from viper. Keys that
// are not set keep their built-in defaults.
func ViewportConfig() (viewport.Config, error) {
	cfg := viewport.DefaultConfig()

	floats := map[string]*float64{
		"min_zoom":             &cfg.MinZoom,
		"max_zoom":             &cfg.MaxZoom,
		"zoom_in_step":         &cfg.ZoomInStep,
		"zoom_out_step":        &cfg.ZoomOutStep,
		"repeat_zoom_in_step":  &cfg.RepeatInStep,
		"repeat_zoom_out_step": &cfg.RepeatOutStep,
		"pan_step_percent":     &cfg.PanStepPercent,
	}
	for key, dst := range floats {
		if viper.IsSet(key) {
			*dst = viper.GetFloat64(key)
		}
	}

	bools := map[string]*bool{
		"keep_zoom":            &cfg.KeepZoom,
		"show_scrollbars":      &cfg.ShowScrollbars,
		"invert_zoom":          &cfg.InvertZoom,
		"upscale_small_images": &cfg.UpscaleSmall,
		"use_zoom_levels":      &cfg.UseZoomLevels,
	}
	for key, dst := range bools {
		if viper.IsSet(key) {
			*dst = viper.GetBool(key)
		}
	}

	if viper.IsSet("block_zoom_delay") {
		cfg.BlockZoomDelay = time.Duration(viper.GetInt("block_zoom_delay")) * time.Millisecond
	}

	if viper.IsSet("zoom_levels") {
		levels, err := floatSlice("zoom_levels")
		if err != nil {
			return cfg, err
		}
		cfg.ZoomLevels = levels
	}

	if viper.IsSet("pan_anchor") {
		anchor, err := floatSlice("pan_anchor")
		if err != nil {
			return cfg, err
		}
		if len(anchor) != 2 {
			return cfg, fmt.Errorf("pan_anchor needs two values, got %d", len(anchor))
		}
		cfg.PanAnchor = geom.Pt(anchor[0], anchor[1])
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ViewportSize is the initial size of the offscreen viewport.
func ViewportSize() geom.Size {
	return geom.Sz(viper.GetFloat64("viewport_width"), viper.GetFloat64("viewport_height"))
}

func NewRenderer() (*render.Renderer, error) {
	bg, err := render.ParseColor(viper.GetString("background"))
	if err != nil {
		return nil, err
	}
	return render.New(bg, viper.GetInt("interpolate_zoom_level")), nil
}

func floatSlice(key string) ([]float64, error) {
	switch v := viper.Get(key).(type) {
	case []float64:
		return v, nil
	case []any:
		out := make([]float64, len(v))
		for i, e := range v {
			f, err := cast.ToFloat64E(e)
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
			}
			out[i] = f
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s must be a list of numbers, got %T", key, v)
	}
}
