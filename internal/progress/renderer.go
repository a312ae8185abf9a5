package progress

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/hasher/pkg/hasher"
)

const plainInterval = time.Second

// Renderer periodically displays a Meter on the diagnostic stream.
// Interactive terminals get a live bubbletea progress bar; everything else
// gets plain cumulative lines through the Logger.
type Renderer struct {
	meter     *Meter
	logger    hasher.Logger
	mode      Mode
	interrupt func()

	program  *tea.Program
	progOpts []tea.ProgramOption
	stopped  chan struct{}
	cancel   context.CancelFunc
}

// NewRenderer creates a renderer for meter using the detected terminal mode.
// interrupt is invoked when the user presses ctrl+c while the bar owns the
// terminal; it must cancel the run. May be nil.
func NewRenderer(meter *Meter, logger hasher.Logger, interrupt func()) *Renderer {
	return &Renderer{
		meter:     meter,
		logger:    logger,
		mode:      DetectMode(),
		interrupt: interrupt,
	}
}

// Start begins rendering in the background until Stop is called or ctx is
// cancelled.
func (r *Renderer) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	r.stopped = make(chan struct{})

	if r.mode == ModeInteractive {
		opts := append([]tea.ProgramOption{
			tea.WithOutput(os.Stderr),
			tea.WithContext(ctx),
		}, r.progOpts...)
		r.program = tea.NewProgram(newModel(r.meter, r.interrupt), opts...)
		go func() {
			defer close(r.stopped)
			// Rendering failures must never fail the run.
			_, _ = r.program.Run()
		}()
		return
	}

	go func() {
		defer close(r.stopped)
		ticker := time.NewTicker(plainInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.logLine()
			}
		}
	}()
}

// Stop renders the final state and waits for the background renderer to exit.
func (r *Renderer) Stop() {
	if r.stopped == nil {
		return
	}
	if r.program != nil {
		r.program.Send(doneMsg{})
		// The final frame must flush before the program's context is torn
		// down, or it races the context kill and can be dropped.
		<-r.stopped
	} else {
		r.logLine()
	}
	r.cancel()
	<-r.stopped
	r.stopped = nil
}

func (r *Renderer) logLine() {
	if total := r.meter.TotalBytes(); total >= 0 {
		r.logger.Info("hashed %d/%d files, %s of %s",
			r.meter.Files(), r.meter.TotalFiles(),
			humanBytes(r.meter.Bytes()), humanBytes(total))
		return
	}
	r.logger.Info("hashed %d/%d files, %s",
		r.meter.Files(), r.meter.TotalFiles(), humanBytes(r.meter.Bytes()))
}
