//go:build rp2040

package main

import (
	"device/rp"
	"ledbank/core"
	"machine"
)

// adcDivider paces free-running conversions at 48 MHz / (1+divider) ≈ 1 kHz
// so the FIFO interrupt does not starve the foreground loop.
const adcDivider = 47999

// adcPin maps an analog channel to its TinyGo pin.
func adcPin(ch core.ADCChannel) machine.Pin {
	switch ch {
	case 1:
		return machine.ADC1
	case 2:
		return machine.ADC2
	case 3:
		return machine.ADC3
	default:
		return machine.ADC0
	}
}

// initADC configures the channel and, in free-running mode, starts
// back-to-back conversions that raise the FIFO interrupt one sample at a time.
func initADC(ch core.ADCChannel, mode core.ADCMode) {
	machine.InitADC()
	adc := machine.ADC{Pin: adcPin(ch)}
	adc.Configure(machine.ADCConfig{})

	rp.ADC.CS.ReplaceBits(
		uint32(ch)<<rp.ADC_CS_AINSEL_Pos,
		rp.ADC_CS_AINSEL_Msk,
		0,
	)

	// FIFO enabled, interrupt at one entry
	rp.ADC.FCS.Set(rp.ADC_FCS_EN | 1<<rp.ADC_FCS_THRESH_Pos)
	rp.ADC.INTE.Set(rp.ADC_INTE_FIFO)

	if mode == core.ADCFreeRunning {
		rp.ADC.DIV.Set(adcDivider << rp.ADC_DIV_INT_Pos)
		rp.ADC.CS.SetBits(rp.ADC_CS_START_MANY)
	}
}

// popSample reads the oldest FIFO entry and scales the 12-bit result to 10 bits.
func popSample() uint16 {
	raw := rp.ADC.FIFO.Get() & rp.ADC_FIFO_VAL_Msk
	return uint16(raw >> 2)
}
