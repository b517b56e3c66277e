package ui

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/chip8vm/internal/beeper"
	"github.com/retroenv/chip8vm/internal/chip8"
	"github.com/retroenv/chip8vm/internal/display"
	"github.com/retroenv/chip8vm/internal/keypad"
	"github.com/retroenv/chip8vm/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// errQuit ends the game loop on user request.
var errQuit = errors.New("quit requested")

// App implements ebiten.Game. Input handling, ticking and sound state
// updates all happen in Update, which serializes every machine access.
type App struct {
	cfg    Config
	logger *log.Logger
	runner *runner.Runner

	tracker *keypad.Tracker
	tex     *ebiten.Image
	dirty   bool // framebuffer changed since the last texture upload
	paused  bool

	beeper *beeper.Beeper
	player *audio.Player
}

// NewApp creates the window frontend for a started runner.
func NewApp(cfg Config, logger *log.Logger, r *runner.Runner) (*App, error) {
	cfg.Defaults()

	a := &App{
		cfg:     cfg,
		logger:  logger,
		runner:  r,
		tracker: keypad.NewTracker(),
		dirty:   true,
	}

	if !cfg.Mute {
		if err := a.initAudio(); err != nil {
			return nil, err
		}
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(chip8.DisplayWidth*cfg.Scale, chip8.DisplayHeight*cfg.Scale)
	ebiten.SetTPS(cfg.TicksPerSecond)
	return a, nil
}

// initAudio creates the player of the buzzer tone.
func (a *App) initAudio() error {
	ctx := audio.NewContext(beeper.DefaultSampleRate)
	a.beeper = beeper.New(beeper.DefaultSampleRate, a.cfg.Tone)

	player, err := ctx.NewPlayer(a.beeper)
	if err != nil {
		return fmt.Errorf("creating audio player: %w", err)
	}
	a.player = player
	a.player.Play()
	return nil
}

// Run opens the window and blocks until it is closed.
func (a *App) Run() error {
	err := ebiten.RunGame(a)
	if a.player != nil {
		a.player.Pause()
	}
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

// Update handles input and executes one machine tick.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		a.restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF6) {
		a.paused = !a.paused
	}

	m := a.runner.Machine()
	held := a.cfg.Layout.Held(isHostKeyPressed)
	if err := a.tracker.Update(held, m); err != nil {
		return fmt.Errorf("updating keys: %w", err)
	}

	if !a.paused && !a.runner.Halted() {
		// the runner logs the fault, the window stays open to show the last frame
		_ = a.runner.Step()
		a.dirty = a.dirty || m.Drawn()
	}

	if a.beeper != nil {
		a.beeper.SetActive(m.SoundActive() && !a.paused && !a.runner.Halted())
	}
	return nil
}

// restart reloads the program, held keys are reported again afterwards.
func (a *App) restart() {
	if err := a.runner.Restart(); err != nil {
		a.logger.Error("Restarting program failed", log.Err(err))
		return
	}
	a.tracker.Reset()
	a.dirty = true
	a.logger.Info("Program restarted")
}

// Draw uploads the framebuffer to the screen.
func (a *App) Draw(screen *ebiten.Image) {
	if a.tex == nil {
		a.tex = ebiten.NewImage(chip8.DisplayWidth, chip8.DisplayHeight)
	}
	if a.dirty {
		fb := a.runner.Machine().Framebuffer()
		a.tex.WritePixels(display.RGBA(&fb, a.cfg.Palette))
		a.dirty = false
	}
	screen.DrawImage(a.tex, nil)
}

// Layout returns the logical screen size, ebiten scales it to the window.
func (a *App) Layout(_, _ int) (int, int) {
	return chip8.DisplayWidth, chip8.DisplayHeight
}
