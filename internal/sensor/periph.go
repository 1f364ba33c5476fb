package sensor

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ads1x15"
	"periph.io/x/devices/v3/bmxx80"
)

// midLight is returned when the ADC cannot be read, so a flaky light sensor
// leaves the display at a sane mid brightness instead of pinning it.
const midLight = 512

// BME reads temperature and humidity from a BME280/BMP280 on the I2C bus.
type BME struct {
	dev *bmxx80.Dev
}

func NewBME(bus i2c.Bus, addr uint16) (*BME, error) {
	dev, err := bmxx80.NewI2C(bus, addr, &bmxx80.DefaultOpts)
	if err != nil {
		return nil, fmt.Errorf("bmxx80: %w", err)
	}
	return &BME{dev: dev}, nil
}

func (b *BME) Read() Snapshot {
	var env physic.Env
	if err := b.dev.Sense(&env); err != nil {
		log.Debug().Err(err).Msg("environment sense failed")
		return Snapshot{}
	}
	return Snapshot{
		Temperature: env.Temperature.Celsius(),
		Humidity:    float64(env.Humidity) / float64(physic.PercentRH),
		Available:   true,
	}
}

// LDR samples the light-dependent resistor divider through an ADS1115
// channel and scales the reading to the 10-bit domain the brightness mapper
// expects.
type LDR struct {
	pin ads1x15.PinADC
}

func NewLDR(bus i2c.Bus) (*LDR, error) {
	adc, err := ads1x15.NewADS1115(bus, &ads1x15.DefaultOpts)
	if err != nil {
		return nil, fmt.Errorf("ads1115: %w", err)
	}
	pin, err := adc.PinForChannel(ads1x15.Channel0, 3300*physic.MilliVolt, 10*physic.Hertz, ads1x15.SaveEnergy)
	if err != nil {
		return nil, fmt.Errorf("ads1115 channel: %w", err)
	}
	return &LDR{pin: pin}, nil
}

func (l *LDR) Raw() int {
	sample, err := l.pin.Read()
	if err != nil {
		log.Debug().Err(err).Msg("light read failed")
		return midLight
	}
	// 16-bit signed sample down to 0..1023.
	raw := int(sample.Raw) >> 5
	if raw < 0 {
		raw = 0
	}
	if raw > 1023 {
		raw = 1023
	}
	return raw
}

// PIR watches the motion sensor's digital output pin.
type PIR struct {
	pin gpio.PinIO
}

func NewPIR(name string) (*PIR, error) {
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("no gpio pin %q", name)
	}
	if err := pin.In(gpio.PullDown, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("pir pin %q: %w", name, err)
	}
	return &PIR{pin: pin}, nil
}

func (p *PIR) Detected() bool { return p.pin.Read() == gpio.High }
