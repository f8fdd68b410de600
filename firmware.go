//go:build tinygo

package main

import (
	"context"
	"machine"

	"soulstar.dev/internal/config"
	"soulstar.dev/internal/display"
	"soulstar.dev/internal/led"
	"soulstar.dev/internal/radio"
	"soulstar.dev/internal/tracker"
)

// Data pin of the LED ring, wired for the pico.
const stripPin = machine.GP2

func main() {
	cfg := config.Default()

	ctrl := make(chan display.Msg, cfg.QueueSize)
	trk := tracker.New(cfg.MaxSouls, cfg.FlushAge())
	strip := led.NewStrip(stripPin)
	orch := display.New(cfg, ctrl, strip, trk)

	mgr, err := radio.New(cfg, ctrl)
	if err != nil {
		// Beacon does not fit the advertisement: a build-time mistake.
		halt("beacon: " + err.Error())
	}
	if err := mgr.Start(); err != nil {
		halt("radio: " + err.Error())
	}

	// Run returns only on an LED write failure. With no other display
	// path the device halts until reset.
	if err := orch.Run(context.Background()); err != nil {
		halt(err.Error())
	}
}

func halt(reason string) {
	println("HALT:", reason)
	for {
	}
}
