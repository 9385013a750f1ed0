package core

import "sync"

// mockDriver is a PeripheralDriver that records every call.
type mockDriver struct {
	mu sync.Mutex

	levels map[InputPin]bool
	port   uint8
	sample uint16

	writes  []uint8
	reloads []uint8
	ops     []string

	period     TimerPeriod
	channel    ADCChannel
	mode       ADCMode
	interrupts bool
}

// newMockDriver returns a driver with both default buttons released (high).
func newMockDriver() *mockDriver {
	cfg := DefaultConfig()
	return &mockDriver{
		levels: map[InputPin]bool{
			cfg.ButtonA: true,
			cfg.ButtonB: true,
		},
	}
}

func (m *mockDriver) ReadDigitalInput(pin InputPin) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	level, ok := m.levels[pin]
	if !ok {
		return true
	}
	return level
}

func (m *mockDriver) ConfigureTimer(period TimerPeriod) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.period = period
	m.ops = append(m.ops, "configure_timer")
}

func (m *mockDriver) ConfigureADC(channel ADCChannel, mode ADCMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.channel = channel
	m.mode = mode
	m.ops = append(m.ops, "configure_adc")
}

func (m *mockDriver) ReloadTimer(reload uint8) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reloads = append(m.reloads, reload)
	m.ops = append(m.ops, "reload")
}

func (m *mockDriver) ReadSample() uint16 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sample
}

func (m *mockDriver) WriteOutputBank(bits uint8) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.port = bits
	m.writes = append(m.writes, bits)
	m.ops = append(m.ops, "write")
}

func (m *mockDriver) ReadOutputBank() uint8 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.port
}

func (m *mockDriver) EnableGlobalInterrupts() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interrupts = true
	m.ops = append(m.ops, "enable_interrupts")
}

// press drives a button line low.
func (m *mockDriver) press(pin InputPin) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.levels[pin] = false
}

func (m *mockDriver) release(pin InputPin) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.levels[pin] = true
}

func (m *mockDriver) setSample(v uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sample = v
}

func (m *mockDriver) writeLog() []uint8 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]uint8(nil), m.writes...)
}

func (m *mockDriver) resetLog() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes = nil
	m.reloads = nil
	m.ops = nil
}
