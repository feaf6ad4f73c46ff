package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/draftforge/draftforge/internal/input/key"
)

// Run initializes the terminal and processes events until the user
// quits or Shutdown is called. It returns ErrQuit on a normal exit.
func (a *App) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	a.mu.Lock()
	a.screen = screen
	a.mu.Unlock()
	defer screen.Fini()

	for {
		a.render()

		select {
		case <-a.done:
			return ErrQuit
		default:
		}

		ev := screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventInterrupt:
			// Repaint request from an async completion or Shutdown.
		case *tcell.EventKey:
			if quit := a.handleKey(e); quit {
				return ErrQuit
			}
		}
	}
}

// handleKey processes one key event. Navigation keys act on the
// outline cursor directly; everything else goes through the keymap.
func (a *App) handleKey(ev *tcell.EventKey) (quit bool) {
	switch {
	case ev.Key() == tcell.KeyCtrlQ,
		ev.Key() == tcell.KeyRune && ev.Rune() == 'q' && ev.Modifiers() == tcell.ModNone:
		return true
	case ev.Key() == tcell.KeyCtrlS:
		if err := a.Save(); err != nil {
			a.setStatus(err.Error())
		}
		return false
	case ev.Key() == tcell.KeyUp && ev.Modifiers() == tcell.ModNone:
		a.moveCursor(-1)
		return false
	case ev.Key() == tcell.KeyDown && ev.Modifiers() == tcell.ModNone:
		a.moveCursor(1)
		return false
	case ev.Key() == tcell.KeyRune && ev.Rune() == ' ' && ev.Modifiers() == tcell.ModNone:
		if id, ok := a.cursorID(); ok {
			a.disp.ToggleSelect(id)
		}
		return false
	case ev.Key() == tcell.KeyEnter && ev.Modifiers() == tcell.ModShift:
		if id, ok := a.cursorID(); ok {
			a.disp.SelectRange(id)
		}
		return false
	}

	chord, ok := translateKey(ev)
	if !ok {
		return false
	}
	a.disp.HandleChord(chord)
	return false
}

// moveCursor moves the outline cursor, clamped to the visible rows.
func (a *App) moveCursor(delta int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cursor += delta
	if a.cursor < 0 {
		a.cursor = 0
	}
	if a.cursor >= len(a.rows) {
		a.cursor = len(a.rows) - 1
	}
}

// cursorID returns the component id under the outline cursor.
func (a *App) cursorID() (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cursor < 0 || a.cursor >= len(a.rows) {
		return "", false
	}
	return a.rows[a.cursor].id, true
}

// confirm renders a yes/no prompt in the status bar and blocks for the
// answer. Called synchronously from the dispatcher during bulk delete.
func (a *App) confirm(prompt string) bool {
	a.mu.Lock()
	screen := a.screen
	a.mu.Unlock()
	if screen == nil {
		return true
	}

	a.setStatus(prompt + " [y/n]")
	a.render()

	for {
		ev := screen.PollEvent()
		keyEv, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		switch {
		case keyEv.Key() == tcell.KeyRune && (keyEv.Rune() == 'y' || keyEv.Rune() == 'Y'):
			a.setStatus("")
			return true
		case keyEv.Key() == tcell.KeyRune && (keyEv.Rune() == 'n' || keyEv.Rune() == 'N'),
			keyEv.Key() == tcell.KeyEscape:
			a.setStatus("Cancelled")
			return false
		}
	}
}

// translateKey converts a tcell key event into a chord. Control
// characters come through as dedicated tcell keys and are folded back
// into Ctrl+letter chords.
func translateKey(ev *tcell.EventKey) (key.Chord, bool) {
	var mods key.Modifier
	m := ev.Modifiers()
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModCmd)
	}

	switch ev.Key() {
	case tcell.KeyRune:
		return key.NewRuneChord(ev.Rune(), mods), true
	case tcell.KeyEscape:
		return key.NewSpecialChord(key.KeyEscape, mods), true
	case tcell.KeyEnter:
		return key.NewSpecialChord(key.KeyEnter, mods), true
	case tcell.KeyTab:
		return key.NewSpecialChord(key.KeyTab, mods), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialChord(key.KeyBackspace, mods), true
	case tcell.KeyDelete:
		return key.NewSpecialChord(key.KeyDelete, mods), true
	case tcell.KeyUp:
		return key.NewSpecialChord(key.KeyUp, mods), true
	case tcell.KeyDown:
		return key.NewSpecialChord(key.KeyDown, mods), true
	case tcell.KeyLeft:
		return key.NewSpecialChord(key.KeyLeft, mods), true
	case tcell.KeyRight:
		return key.NewSpecialChord(key.KeyRight, mods), true
	}

	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		r := rune('a' + ev.Key() - tcell.KeyCtrlA)
		return key.NewRuneChord(r, mods.With(key.ModCtrl)), true
	}
	return key.Chord{}, false
}
