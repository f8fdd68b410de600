// Package radio owns the BLE side of the badge: broadcasting our beacon and
// scanning for peers. Reports reach the display task over the control
// channel via a non-blocking send, because the scan callback runs in the
// adapter's context and must never wait.
package radio

import (
	"fmt"
	"log/slog"
	"time"

	"tinygo.org/x/bluetooth"

	"soulstar.dev/internal/config"
	"soulstar.dev/internal/display"
	"soulstar.dev/internal/protocol"
)

// Manager drives the advertiser and scanner on the default adapter.
type Manager struct {
	adapter *bluetooth.Adapter
	cfg     *config.Config
	ctrl    chan<- display.Msg
	payload []byte
	running bool
}

// New builds the manager and encodes the beacon. An oversized beacon is a
// configuration mistake and surfaces here, before anything touches the
// radio.
func New(cfg *config.Config, ctrl chan<- display.Msg) (*Manager, error) {
	payload, err := protocol.EncodeBeacon(cfg.Name, cfg.RGB(), cfg.TxPower)
	if err != nil {
		return nil, fmt.Errorf("encoding beacon: %w", err)
	}
	return &Manager{
		adapter: bluetooth.DefaultAdapter,
		cfg:     cfg,
		ctrl:    ctrl,
		payload: payload,
	}, nil
}

// Start enables the adapter, begins advertising and starts the scanner
// goroutine.
func (m *Manager) Start() error {
	if err := m.adapter.Enable(); err != nil {
		return fmt.Errorf("enabling BLE adapter: %w (try sudo or setcap cap_net_admin+ep)", err)
	}

	adv := m.adapter.DefaultAdvertisement()
	err := adv.Configure(bluetooth.AdvertisementOptions{
		LocalName: m.cfg.Name,
		ManufacturerData: []bluetooth.ManufacturerDataElement{{
			CompanyID: config.CompanyID,
			Data:      []byte{m.cfg.Colour[0], m.cfg.Colour[1], m.cfg.Colour[2]},
		}},
		Interval: bluetooth.NewDuration(200 * time.Millisecond),
	})
	if err != nil {
		return fmt.Errorf("configuring advertisement: %w", err)
	}
	if err := adv.Start(); err != nil {
		return fmt.Errorf("starting advertisement: %w", err)
	}
	slog.Info("beacon advertising", "name", m.cfg.Name, "bytes", len(m.payload))

	m.running = true
	go func() {
		if err := m.adapter.Scan(m.onScan); err != nil {
			slog.Error("scan stopped", "err", err)
		}
	}()
	return nil
}

// onScan runs in the adapter's callback context: no blocking, no locks held
// across anything that could suspend. Filtered reports are dropped silently;
// a full control queue drops the report too, since the peer will beacon
// again shortly.
func (m *Manager) onScan(_ *bluetooth.Adapter, result bluetooth.ScanResult) {
	if !m.running {
		return
	}
	addr, err := protocol.ParseAddress(result.Address.String())
	if err != nil {
		return
	}

	msg, ok := m.decode(result, addr)
	if !ok {
		return
	}
	if !display.TrySend(m.ctrl, display.PresenceUpdate{Msg: msg}) {
		slog.Debug("control queue full, dropping presence report", "key", msg.Key)
	}
}

// decode prefers the raw advertisement bytes so the wire filter sees exactly
// what was broadcast. Some platforms never hand the raw payload to the
// callback; there we rebuild the message from the fields the stack already
// parsed.
func (m *Manager) decode(result bluetooth.ScanResult, addr [6]byte) (protocol.PresenceMessage, bool) {
	if raw := result.Bytes(); raw != nil {
		return protocol.DecodeReport(raw, result.RSSI, addr)
	}
	for _, elem := range result.ManufacturerData() {
		if elem.CompanyID != config.CompanyID || len(elem.Data) != 3 {
			continue
		}
		name := result.LocalName()
		if name == "" {
			name = protocol.UnknownName
		}
		return protocol.PresenceMessage{
			Key:      protocol.IdentityKey(addr),
			RSSI:     result.RSSI,
			LastSeen: time.Now(),
			Name:     name,
			Colour:   rgba(elem.Data[0], elem.Data[1], elem.Data[2]),
		}, true
	}
	return protocol.PresenceMessage{}, false
}

// Stop halts the scanner. The advertisement keeps running until the adapter
// is torn down with the process.
func (m *Manager) Stop() {
	m.running = false
	_ = m.adapter.StopScan()
}
