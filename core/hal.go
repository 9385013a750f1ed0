package core

// InputPin identifies a digital input line as numbered by the target.
type InputPin uint8

// ADCChannel identifies the analog input channel.
type ADCChannel uint8

// ADCMode selects how conversions are triggered.
type ADCMode uint8

const (
	ADCSingleShot  ADCMode = iota // one conversion per request
	ADCFreeRunning                // back-to-back conversions, one interrupt each
)

// TimerPeriod is the duration of one hardware counter increment, in nanoseconds.
type TimerPeriod uint32

// Sample range of the 10-bit converter.
const (
	ADCBits = 10
	ADCMax  = 1<<ADCBits - 1
)

// TimerCounterSpan is the number of counts in the 8-bit overflow timer. A
// reload value r yields an overflow every TimerCounterSpan-r counts.
const TimerCounterSpan = 256

// PeripheralDriver is the abstract hardware interface the controller core uses.
// Platform-specific implementations handle register configuration. Every
// operation is treated as infallible.
type PeripheralDriver interface {
	InputReader

	// ConfigureTimer sets the base count period. Called once at startup.
	ConfigureTimer(period TimerPeriod)

	// ConfigureADC selects the analog channel and conversion mode.
	ConfigureADC(channel ADCChannel, mode ADCMode)

	// ReloadTimer loads the 8-bit counter start value; the next overflow
	// fires after TimerCounterSpan-reload counts.
	ReloadTimer(reload uint8)

	// ReadSample returns the completed conversion result in [0, ADCMax].
	ReadSample() uint16

	// WriteOutputBank drives all eight output lines at once.
	WriteOutputBank(bits uint8)

	// ReadOutputBank returns the value currently latched on the output port.
	ReadOutputBank() uint8

	// EnableGlobalInterrupts starts timer and ADC event delivery.
	EnableGlobalInterrupts()
}

// InputReader polls a digital input line. The returned value is the
// electrical level: true is high.
type InputReader interface {
	ReadDigitalInput(pin InputPin) bool
}

// Global singleton used by target code.
var peripheralDriver PeripheralDriver

// SetPeripheralDriver is called by target-specific code to register its driver.
func SetPeripheralDriver(d PeripheralDriver) {
	peripheralDriver = d
}

// MustPeripheral returns the configured driver or panics if missing.
func MustPeripheral() PeripheralDriver {
	if peripheralDriver == nil {
		panic("peripheral driver not configured")
	}
	return peripheralDriver
}
