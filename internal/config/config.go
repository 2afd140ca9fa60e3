// Package config handles studio configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/asaro-studio/internal/engine/capture"
	"github.com/Faultbox/asaro-studio/internal/lighting"
	"github.com/Faultbox/asaro-studio/internal/params"
)

// Config holds all studio settings.
type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Camera      CameraConfig      `yaml:"camera"`
	Scene       SceneConfig       `yaml:"scene"`
	Lighting    params.State      `yaml:"lighting"` // Initial parameters
	Panel       PanelConfig       `yaml:"panel"`
	Persistence PersistenceConfig `yaml:"persistence"`
	Capture     CaptureConfig     `yaml:"capture"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CameraConfig holds viewport camera settings.
type CameraConfig struct {
	FOV             float32 `yaml:"fov"` // Vertical, degrees
	Distance        float32 `yaml:"distance"`
	MinDistance     float32 `yaml:"min_distance"`
	MaxDistance     float32 `yaml:"max_distance"`
	DragSensitivity float32 `yaml:"drag_sensitivity"`
	ZoomSensitivity float32 `yaml:"zoom_sensitivity"`
}

// SceneConfig holds how the subject and lights are set up.
type SceneConfig struct {
	Convention  string  `yaml:"convention"` // front-z or front-x
	LightKind   string  `yaml:"light_kind"` // directional or point
	PointCutoff float64 `yaml:"point_cutoff"`
	Ambient     float32 `yaml:"ambient"`
	HeadOffsetY float32 `yaml:"head_offset_y"`
	HeadScale   float32 `yaml:"head_scale"`
}

// PanelConfig holds control panel layout settings.
type PanelConfig struct {
	Width        int          `yaml:"width"`
	DialSize     int          `yaml:"dial_size"`
	SliderHeight int          `yaml:"slider_height"`
	SliderWidth  int          `yaml:"slider_width"`
	Palette      []params.RGB `yaml:"palette"`
}

// PersistenceConfig holds preset storage settings.
type PersistenceConfig struct {
	Enabled bool   `yaml:"enabled"`
	AppName string `yaml:"app_name"`
}

// CaptureConfig holds where viewport captures are written.
type CaptureConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
	Format string `yaml:"format"` // png or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      1280,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			FOV:             35,
			Distance:        100,
			MinDistance:     30,
			MaxDistance:     400,
			DragSensitivity: 0.005,
			ZoomSensitivity: 0.1,
		},
		Scene: SceneConfig{
			Convention:  lighting.FrontZ.Name,
			LightKind:   lighting.Directional.String(),
			PointCutoff: 1.25,
			Ambient:     0.05,
			HeadOffsetY: 0,
			HeadScale:   12,
		},
		Lighting: params.Default(),
		Panel: PanelConfig{
			Width:        320,
			DialSize:     60,
			SliderHeight: 60,
			SliderWidth:  30,
			Palette: []params.RGB{
				params.MustHex("#ffffff"),
				params.MustHex("#ffae00"),
				params.MustHex("#ff5a36"),
				params.MustHex("#6ec1ff"),
				params.MustHex("#7dff9a"),
				params.MustHex("#c58cff"),
				params.MustHex("#808080"),
				params.MustHex("#222222"),
			},
		},
		Persistence: PersistenceConfig{
			Enabled: true,
			AppName: "asaro_studio",
		},
		Capture: CaptureConfig{
			Dir:    "captures",
			Prefix: "studio",
			Format: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values that cannot be fixed up silently.
func (c *Config) Validate() error {
	if _, err := lighting.ConventionByName(c.Scene.Convention); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	if _, err := lighting.KindByName(c.Scene.LightKind); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: size %dx%d is not positive", c.Window.Width, c.Window.Height)
	}
	if c.Panel.Width <= 0 || c.Panel.Width >= c.Window.Width {
		return fmt.Errorf("panel: width %d does not fit window width %d", c.Panel.Width, c.Window.Width)
	}
	if c.Panel.SliderHeight <= 20 || c.Panel.DialSize <= 20 {
		return fmt.Errorf("panel: controls must be larger than 20px")
	}
	if c.Camera.MinDistance <= 0 || c.Camera.MinDistance > c.Camera.MaxDistance {
		return fmt.Errorf("camera: distance range [%v, %v] is invalid", c.Camera.MinDistance, c.Camera.MaxDistance)
	}
	if _, err := capture.FormatByName(c.Capture.Format); err != nil {
		return fmt.Errorf("capture: %w", err)
	}
	if len(c.Panel.Palette) == 0 {
		return fmt.Errorf("panel: palette is empty")
	}
	return nil
}
