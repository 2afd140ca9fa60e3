package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagConvention = flag.String("convention", "", "Light placement convention (front-z, front-x)")
	flagLightKind  = flag.String("light-kind", "", "Light kind (directional, point)")
	flagNoPersist  = flag.Bool("no-persist", false, "Do not load or save the last session")
	flagInit       = flag.Bool("init-config", false, "Write the effective config to the config directory and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// InitRequested reports whether --init-config was given.
func InitRequested() bool {
	return *flagInit
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagConvention != "" {
		cfg.Scene.Convention = *flagConvention
	}
	if *flagLightKind != "" {
		cfg.Scene.LightKind = *flagLightKind
	}
	if *flagNoPersist {
		cfg.Persistence.Enabled = false
	}
}
