// machine.go - composition root wiring Memory, CPU and ULA into the host
// frame loop described in §4.4.
//
// Grounded on the teacher's top-level wiring in engine.go/machine_bus.go
// (IntuitionAmiga-IntuitionEngine): a single composition type constructed
// once, holding concrete owned components rather than an interface soup.
// The CPU-needs-ULA / ULA-needs-CPU cycle is broken the way §9 prescribes:
// the ULA is built first and handed to the CPU as its Ports capability,
// then AttachCPU closes the loop so the ULA can raise interrupts.

package spectrumcore

// Machine is a complete ZX Spectrum 48K core: memory, CPU and ULA wired
// together and ready to run ROM code.
type Machine struct {
	Memory *Memory
	CPU    *CPU
	ULA    *ULA
}

// NewMachine allocates a fresh machine and loads rom as the 16 KiB ROM
// image. Returns an error if rom is not exactly 16,384 bytes.
func NewMachine(rom []byte) (*Machine, error) {
	mem := NewMemory()
	if err := mem.LoadROM(rom); err != nil {
		return nil, err
	}

	ula := NewULA(mem, nil)
	cpu := NewCPU(mem, ula)
	ula.AttachCPU(cpu)

	return &Machine{Memory: mem, CPU: cpu, ULA: ula}, nil
}

// SetTracer installs an optional per-fetch tracer on the CPU.
func (m *Machine) SetTracer(t Tracer) { m.CPU.SetTracer(t) }

// RunFrame executes one ULA frame's worth of t-states (69,888, §4.2/§4.3)
// and then delivers the frame-boundary interrupt, matching the host loop
// in §4.4 steps 2-3. Callers apply key presses/releases before calling
// this, and call Render afterward to pull the finished picture.
func (m *Machine) RunFrame() {
	m.CPU.RunFor(frameTstates)
	m.ULA.OnFrameBoundary()
}

// Render materialises the current 256x192 display into out (§4.4 step 4).
func (m *Machine) Render(out []uint32) { m.ULA.Render(out) }

// DrainSpeakerEvents returns and clears the buffered speaker side channel.
func (m *Machine) DrainSpeakerEvents() []SpeakerEvent { return m.ULA.DrainSpeakerEvents() }

// Reset reinitialises CPU registers and ULA interrupt/flash state without
// touching RAM or video memory (§3: "reset ... MUST NOT zero RAM").
func (m *Machine) Reset() {
	m.CPU.Reset()
	m.ULA.frameCount = 0
	m.ULA.flashState = false
}
