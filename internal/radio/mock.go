package radio

import (
	"context"
	"image/color"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"soulstar.dev/internal/config"
	"soulstar.dev/internal/display"
	"soulstar.dev/internal/protocol"
)

func rgba(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// soulTemplates name the fake badges demo mode conjures up.
var soulTemplates = []struct {
	Name   string
	Colour color.RGBA
}{
	{"Ember", rgba(0xFF, 0x45, 0x00)},
	{"Kelp", rgba(0x2E, 0x8B, 0x57)},
	{"Frost", rgba(0x87, 0xCE, 0xFA)},
	{"Violet", rgba(0x94, 0x00, 0xD3)},
	{"Marigold", rgba(0xFF, 0xB3, 0x00)},
	{"Rose", rgba(0xFF, 0x2D, 0x78)},
	{"Moss", rgba(0x6B, 0x8E, 0x23)},
	{"Cobalt", rgba(0x00, 0x47, 0xAB)},
}

type mockSoul struct {
	addr      [6]byte
	payload   []byte
	baseRSSI  float64
	phase     float64
	amplitude float64
	active    bool
}

// MockField simulates a handful of nearby badges for demo mode. The fake
// beacons go through EncodeBeacon and back through DecodeReport, so the
// whole protocol path is exercised without a radio.
type MockField struct {
	ctrl   chan<- display.Msg
	souls  []mockSoul
	cancel context.CancelFunc
}

// NewMockField fabricates a random subset of the templates.
func NewMockField(cfg *config.Config, ctrl chan<- display.Msg) *MockField {
	perm := rand.Perm(len(soulTemplates))
	count := 4 + rand.Intn(len(soulTemplates)-3)

	souls := make([]mockSoul, 0, count)
	for _, ti := range perm[:count] {
		tmpl := soulTemplates[ti]
		payload, err := protocol.EncodeBeacon(tmpl.Name, tmpl.Colour, cfg.TxPower)
		if err != nil {
			// Template names are short; this cannot happen unless someone
			// edits the table.
			slog.Error("mock beacon does not fit", "name", tmpl.Name, "err", err)
			continue
		}
		souls = append(souls, mockSoul{
			addr:      randomAddress(),
			payload:   payload,
			baseRSSI:  -40 - rand.Float64()*50,
			phase:     rand.Float64() * 2 * math.Pi,
			amplitude: 3 + rand.Float64()*8,
			active:    true,
		})
	}
	return &MockField{ctrl: ctrl, souls: souls}
}

// Start begins emitting fake reports.
func (f *MockField) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	go f.loop(ctx)
}

func (f *MockField) loop(ctx context.Context) {
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	t := 0.0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t += 0.2
			f.emit(t)
		}
	}
}

func (f *MockField) emit(t float64) {
	for i := range f.souls {
		s := &f.souls[i]

		// Souls wander out of range and back.
		if rand.Float64() < 0.005 {
			s.active = !s.active
		}
		if !s.active {
			continue
		}

		rssi := s.baseRSSI + s.amplitude*math.Sin(t*0.5+s.phase) + (rand.Float64()-0.5)*4
		msg, ok := protocol.DecodeReport(s.payload, int16(rssi), s.addr)
		if !ok {
			continue
		}
		display.TrySend(f.ctrl, display.PresenceUpdate{Msg: msg})
	}
}

// Stop halts the field.
func (f *MockField) Stop() {
	if f.cancel != nil {
		f.cancel()
	}
}

func randomAddress() [6]byte {
	var addr [6]byte
	for i := range addr {
		addr[i] = byte(rand.Intn(256))
	}
	return addr
}
