package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/example/matrixclock/internal/power"
)

type Tiles struct {
	X int `yaml:"x"` // tiles across
	Y int `yaml:"y"` // tiles down
}

type SPI struct {
	Dev     string `yaml:"dev"`      // e.g. /dev/spidev0.0, empty = first available
	SpeedHz int    `yaml:"speed_hz"` // e.g. 8000000
}

type I2C struct {
	Dev string `yaml:"dev"` // e.g. /dev/i2c-1, empty = first available
}

type Brightness struct {
	Manual bool `yaml:"manual"` // manual level instead of ambient mapping
	Level  int  `yaml:"level"`  // 1..15
}

type Config struct {
	Driver   string `yaml:"driver"` // "spi" | "sim"
	Tiles    Tiles  `yaml:"tiles"`
	Rotation int    `yaml:"rotation"` // 0 | 90 | 270
	SPI      SPI    `yaml:"spi,omitempty"`
	I2C      I2C    `yaml:"i2c,omitempty"`
	PIRPin   string `yaml:"pir_pin"`  // e.g. GPIO4
	BMEAddr  uint16 `yaml:"bme_addr"` // e.g. 0x76

	TickMs          int `yaml:"tick_ms"`
	TimeoutTicks    int `yaml:"timeout_ticks"`    // idle ticks before off
	GraceSeconds    int `yaml:"grace_seconds"`    // forced-on after power-up
	OverrideSeconds int `yaml:"override_seconds"` // manual override lifetime

	Use24h     bool         `yaml:"use_24h"`
	Fahrenheit bool         `yaml:"fahrenheit"`
	Brightness Brightness   `yaml:"brightness"`
	Schedule   power.Window `yaml:"schedule"`

	Addr string `yaml:"addr"` // HTTP listen address
}

// Default matches the common 32x16 build: four tiles across, two down.
func Default() *Config {
	return &Config{
		Driver:          "spi",
		Tiles:           Tiles{X: 4, Y: 2},
		Rotation:        90,
		PIRPin:          "GPIO4",
		BMEAddr:         0x76,
		TickMs:          100,
		TimeoutTicks:    600,
		GraceSeconds:    10,
		OverrideSeconds: 300,
		Brightness:      Brightness{Manual: false, Level: 4},
		Addr:            ":8080",
	}
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	c.clamp()
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// clamp pulls every field back into its valid domain; config mistakes are
// corrected, never rejected.
func (c *Config) clamp() {
	if c.Tiles.X < 1 {
		c.Tiles.X = 1
	}
	if c.Tiles.Y < 1 {
		c.Tiles.Y = 1
	}
	if c.TickMs < 10 {
		c.TickMs = 10
	}
	if c.TimeoutTicks < 1 {
		c.TimeoutTicks = 1
	}
	if c.GraceSeconds < 0 {
		c.GraceSeconds = 0
	}
	if c.OverrideSeconds < 1 {
		c.OverrideSeconds = 1
	}
	c.Brightness.Level = power.ClampLevel(c.Brightness.Level)
	c.Schedule = c.Schedule.Clamp()
}
