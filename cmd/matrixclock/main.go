package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/example/matrixclock/internal/app"
	"github.com/example/matrixclock/internal/config"
	"github.com/example/matrixclock/internal/driver"
	"github.com/example/matrixclock/internal/frame"
	"github.com/example/matrixclock/internal/power"
	"github.com/example/matrixclock/internal/sensor"
	"github.com/example/matrixclock/internal/ws"
)

func main() {
	// ---- Flags (config.yaml can override most) ----
	var (
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
		addr       = flag.String("addr", "", "HTTP listen address (overrides config)")
		drvName    = flag.String("driver", "", "driver: spi | sim (overrides config)")
		simOnly    = flag.Bool("sim-only", false, "force simulation (no hardware output)")
		debug      = flag.Bool("debug", false, "debug logging")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// ---- Config ----
	cfg := config.Default()
	if c, err := config.Load(*configPath); err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with defaults")
	} else {
		cfg = c
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *drvName != "" {
		cfg.Driver = *drvName
	}
	if *simOnly {
		cfg.Driver = "sim"
	}

	rot, err := frame.ParseRotation(cfg.Rotation)
	if err != nil {
		log.Warn().Err(err).Msg("bad rotation in config; using 90")
		rot = frame.Rotate90
	}

	// ---- periph host ----
	useHardware := cfg.Driver == "spi"
	if useHardware {
		if _, err := host.Init(); err != nil {
			log.Warn().Err(err).Msg("periph host init failed; falling back to sim")
			useHardware = false
			cfg.Driver = "sim"
		}
	}

	// ---- Driver ----
	units := cfg.Tiles.X * cfg.Tiles.Y
	var drv driver.Driver
	if cfg.Driver == "spi" {
		d, err := driver.NewMAX7219(cfg.SPI.Dev, units, cfg.SPI.SpeedHz)
		if err != nil {
			log.Warn().Err(err).Str("dev", cfg.SPI.Dev).Msg("spi init failed; falling back to sim")
			drv = driver.NewSim()
			cfg.Driver = "sim"
		} else {
			drv = d
		}
	} else {
		drv = driver.NewSim()
	}

	// ---- Sensors (each degrades to a sim independently) ----
	var (
		env    sensor.Source       = sensor.SimEnv{}
		light  sensor.LightSource  = sensor.SimLight{Value: 512}
		motion sensor.MotionSource = &sensor.SimMotion{Value: true}
	)
	if useHardware {
		if bus, err := i2creg.Open(cfg.I2C.Dev); err != nil {
			log.Warn().Err(err).Msg("i2c open failed; environment and light use sims")
		} else {
			if b, err := sensor.NewBME(bus, cfg.BMEAddr); err != nil {
				log.Warn().Err(err).Msg("environment sensor unavailable")
			} else {
				env = b
			}
			if l, err := sensor.NewLDR(bus); err != nil {
				log.Warn().Err(err).Msg("light sensor unavailable")
			} else {
				light = l
			}
		}
		if p, err := sensor.NewPIR(cfg.PIRPin); err != nil {
			log.Warn().Err(err).Str("pin", cfg.PIRPin).Msg("motion sensor unavailable; display stays motion-on")
		} else {
			motion = p
		}
	}

	// ---- Controller ----
	tick := time.Duration(cfg.TickMs) * time.Millisecond
	ctrl := app.NewController(app.Options{
		Clock:      app.SystemClock(),
		Driver:     drv,
		Env:        env,
		Light:      light,
		Motion:     motion,
		TilesX:     cfg.Tiles.X,
		TilesY:     cfg.Tiles.Y,
		Rotation:   rot,
		Use24h:     cfg.Use24h,
		Fahrenheit: cfg.Fahrenheit,
		Power: power.Config{
			Timeout:  cfg.TimeoutTicks,
			Grace:    time.Duration(cfg.GraceSeconds) * time.Second,
			Override: time.Duration(cfg.OverrideSeconds) * time.Second,
		},
	})
	ctrl.Do(func(m *power.Machine) {
		m.SetManualLevel(cfg.Brightness.Level)
		m.SetManualSource(cfg.Brightness.Manual)
		m.SetSchedule(cfg.Schedule)
	})

	// ---- HTTP surface ----
	state := ws.NewState(ctrl, drv)
	ctrl.SetPublish(state.Broadcast)
	mux := http.NewServeMux()
	state.Routes(mux)
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	ctrl.Banner("CLOCK")
	go ctrl.Run(ctx, tick)
	go func() {
		log.Info().Str("addr", cfg.Addr).Str("driver", cfg.Driver).
			Int("tiles_x", cfg.Tiles.X).Int("tiles_y", cfg.Tiles.Y).Str("rotation", rot.String()).
			Msg("matrixclock starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server crashed")
		}
	}()

	// ---- Graceful shutdown ----
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	s := <-ch
	log.Info().Str("signal", s.String()).Msg("shutting down")

	cancel()
	_ = srv.Close()
	_ = drv.SetDisplay(false)
	_ = drv.Close()
}
