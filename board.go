package af9035

import (
	"context"
	"fmt"
	"time"

	"github.com/moffa90/go-af9035/regbus"
	"github.com/moffa90/go-af9035/regmap"
	"github.com/moffa90/go-af9035/tuner"
)

// Board bring-up delays.
const (
	tunerResetPulse = time.Millisecond
	mxlPowerSettle  = 30 * time.Millisecond
	mxlResetSettle  = 300 * time.Millisecond
)

// boardInit powers the tuner and pulses its reset through the bridge GPIOs.
// The wiring depends on the tuner fitted to the board.
func (d *Device) boardInit(ctx context.Context, kind tuner.Kind) error {
	var err error
	switch kind {
	case tuner.TUA9001, tuner.TDA18218:
		err = d.gpioSteps(ctx,
			[]regbus.RegValue{
				{Reg: regmap.GPIOT2En, Field: regmap.Bit0, Value: 1},
				{Reg: regmap.GPIOT2On, Field: regmap.Bit0, Value: 1},
				{Reg: regmap.GPIOT3En, Field: regmap.Bit0, Value: 1},
				{Reg: regmap.GPIOT3On, Field: regmap.Bit0, Value: 1},
				// reset
				{Reg: regmap.GPIOT3O, Field: regmap.Bit0, Value: 0},
			},
			tunerResetPulse,
			[]regbus.RegValue{
				{Reg: regmap.GPIOT3O, Field: regmap.Bit0, Value: 1},
				// rx enable
				{Reg: regmap.GPIOT2O, Field: regmap.Bit0, Value: 1},
			},
		)

	case tuner.MxL5007T:
		err = d.gpioSteps(ctx,
			[]regbus.RegValue{
				{Reg: regmap.GPIOH12En, Value: 1},
				{Reg: regmap.GPIOH12On, Value: 1},
				{Reg: regmap.GPIOH12O, Value: 0},
			},
			mxlPowerSettle,
			[]regbus.RegValue{
				{Reg: regmap.GPIOH12O, Value: 1},
			},
			mxlResetSettle,
			[]regbus.RegValue{
				{Reg: regmap.GPIOH4En, Value: 1},
				{Reg: regmap.GPIOH4On, Value: 1},
				{Reg: regmap.GPIOH4O, Value: 0},
				{Reg: regmap.GPIOH3En, Value: 1},
				{Reg: regmap.GPIOH3On, Value: 1},
				{Reg: regmap.GPIOH3O, Value: 1},
			},
		)

	default:
		d.logDebug("no board init", "tuner", kind.String())
		return nil
	}

	if err != nil {
		return fmt.Errorf("board init for %s: %w", kind, err)
	}
	return nil
}

// gpioSteps writes register tables separated by delays. Each step is either
// a []regbus.RegValue or a time.Duration.
func (d *Device) gpioSteps(ctx context.Context, steps ...interface{}) error {
	for _, s := range steps {
		switch s := s.(type) {
		case []regbus.RegValue:
			if err := regbus.WriteTable(ctx, d.bus, s); err != nil {
				return err
			}
		case time.Duration:
			if err := sleep(ctx, s); err != nil {
				return err
			}
		}
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
