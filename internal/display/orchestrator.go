// Package display contains the central coordination task of the badge: a
// single goroutine that merges the animation ticker, the tracker flush
// ticker and the control channel, and decides what the LEDs show each cycle.
package display

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"soulstar.dev/internal/animation"
	"soulstar.dev/internal/config"
	"soulstar.dev/internal/led"
	"soulstar.dev/internal/protocol"
	"soulstar.dev/internal/tracker"
)

// Orchestrator owns the display state. It is the only writer to the LED
// sink; everything else talks to it through the control channel.
type Orchestrator struct {
	cfg     *config.Config
	ctrl    <-chan Msg
	sink    led.Sink
	tracker *tracker.Tracker
	pending *pendingQueue

	current    animation.Animation
	running    bool
	torch      bool
	brightness uint8
}

// New builds an orchestrator. The tracker is shared with the radio callback;
// sink and channel belong to the orchestrator once Run starts.
func New(cfg *config.Config, ctrl <-chan Msg, sink led.Sink, trk *tracker.Tracker) *Orchestrator {
	o := &Orchestrator{
		cfg:        cfg,
		ctrl:       ctrl,
		sink:       sink,
		tracker:    trk,
		pending:    newPendingQueue(cfg.MaxPending),
		running:    true,
		brightness: cfg.Brightness,
	}
	o.current = o.defaultAnimation()
	return o
}

// defaultAnimation is what plays when nothing else is current or pending:
// an endless, interruptable sparkle in our own colour.
func (o *Orchestrator) defaultAnimation() animation.Animation {
	return animation.NewSparkle(o.cfg.RGB(), o.cfg.StripLen, 0)
}

// Run is the display task loop. Exactly one of the three wait branches
// resolves per iteration. It returns only on context cancellation or on an
// LED sink write failure, which is fatal: a badge with a dead strip has
// nothing left to do.
func (o *Orchestrator) Run(ctx context.Context) error {
	animTick := time.NewTicker(o.cfg.AnimationUpdate())
	defer animTick.Stop()
	flushTick := time.NewTicker(o.cfg.FlushInterval())
	defer flushTick.Stop()

	slog.Info("display task started")
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-animTick.C:
			if err := o.tick(time.Now()); err != nil {
				return err
			}
		case msg := <-o.ctrl:
			if err := o.handle(msg); err != nil {
				return err
			}
		case <-flushTick.C:
			o.flush(time.Now())
		}
	}
}

// tick renders one animation cycle, if the display is running.
func (o *Orchestrator) tick(now time.Time) error {
	if !o.running || o.torch {
		return nil
	}
	frame, ok := o.nextFrame(now)
	if !ok {
		return nil
	}
	return o.write(frame)
}

// nextFrame resolves what to show this cycle. In order, first match wins:
//
//  1. something is pending and the current animation may be interrupted:
//     switch to the pending one;
//  2. the current animation still yields frames and either nothing is
//     pending or it may not be interrupted: keep it (an uninterruptable
//     busy animation blocks the queue on purpose);
//  3. exhausted, nothing pending: revert to the default animation;
//  4. exhausted, something pending: dequeue it regardless of
//     interruptability, since an exhausted animation can never block.
//
// The head of the queue is only removed once the switch is committed, so an
// in-flight current animation never loses its place to a premature dequeue.
func (o *Orchestrator) nextFrame(now time.Time) ([]color.RGBA, bool) {
	if next, ok := o.pending.Peek(); ok && o.current.Interruptable() {
		o.pending.Drop()
		o.current = next
		return o.current.Next(now)
	}
	if frame, ok := o.current.Next(now); ok {
		return frame, true
	}
	if next, ok := o.pending.Pop(); ok {
		o.current = next
	} else {
		o.current = o.defaultAnimation()
	}
	return o.current.Next(now)
}

// handle applies one control message.
func (o *Orchestrator) handle(msg Msg) error {
	switch m := msg.(type) {
	case Stop:
		o.running = false
	case Start:
		o.running = true
	case Off:
		o.running = false
		return o.write(make([]color.RGBA, o.cfg.StripLen))
	case On:
		o.running = true
	case Brightness:
		o.brightness = m.Level
		if o.torch {
			return o.write(o.torchFrame())
		}
	case Torch:
		if m.On {
			o.torch = true
			o.running = false
			return o.write(o.torchFrame())
		}
		o.torch = false
		o.running = true
	case PresenceUpdate:
		o.presence(m.Msg)
	default:
		slog.Warn("display task ignoring unknown message", "msg", msg)
	}
	return nil
}

// presence forwards a beacon to the tracker. A new arrival queues a short
// announcement sparkle in the arriving soul's colour followed by a fresh
// presence rotation; a refresh of a known soul changes nothing on screen.
func (o *Orchestrator) presence(msg protocol.PresenceMessage) {
	if !o.tracker.Update(msg) {
		return
	}
	slog.Info("soul arrived", "key", msg.Key, "name", msg.Name)
	o.enqueue(animation.NewSparkle(msg.Colour, o.cfg.StripLen, o.cfg.ArrivalTTL()))
	o.enqueue(animation.NewPresence(o.tracker.Summary(), o.cfg.StripLen))
}

// flush evicts stale souls; if anyone left, queue a refreshed rotation.
func (o *Orchestrator) flush(now time.Time) {
	if o.tracker.Flush(now) {
		slog.Info("a soul disappeared", "remaining", o.tracker.Count())
		o.enqueue(animation.NewPresence(o.tracker.Summary(), o.cfg.StripLen))
	}
}

// enqueue is best-effort: on a full queue the animation is dropped and the
// display self-heals on the next tracker change.
func (o *Orchestrator) enqueue(a animation.Animation) {
	if !o.pending.Push(a) {
		slog.Debug("pending queue full, dropping animation", "animation", a.String())
	}
}

func (o *Orchestrator) torchFrame() []color.RGBA {
	frame := make([]color.RGBA, o.cfg.StripLen)
	for i := range frame {
		frame[i] = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return frame
}

func (o *Orchestrator) write(frame []color.RGBA) error {
	if err := o.sink.Write(frame, o.brightness); err != nil {
		return fmt.Errorf("led sink write: %w", err)
	}
	return nil
}
