// Package teatest drives bubbletea models synchronously in tests.
//
// Instead of running a tea.Program, the Driver calls Update() directly and
// drains every returned Cmd inline, so model behavior can be asserted
// without goroutines or timing races. Blocking Cmds such as cursor blink
// timers are executed with a short timeout and skipped when they do not
// return promptly.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDrainDepth bounds recursive command draining.
const maxDrainDepth = 100

// cmdTimeout separates real Cmds (DB queries, message factories, done in
// microseconds) from timer Cmds like cursor blink, which block for ~530ms.
const cmdTimeout = 10 * time.Millisecond

// Driver is a synchronous test harness for a tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set when tea.QuitMsg is seen during drain. The bubbletea
	// runtime normally intercepts it, so the driver detects it explicitly.
	Quitting bool
}

// New creates a Driver and runs the model's Init() command.
func New(t *testing.T, model tea.Model) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	d.drainCmd(model.Init(), 0)
	return d
}

// SetSize sends a WindowSizeMsg.
func (d *Driver) SetSize(w, h int) {
	d.T.Helper()
	d.Send(tea.WindowSizeMsg{Width: w, Height: h})
}

// Send dispatches a message through Update and drains all resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(cmd, 0)
}

// Type sends a string character by character as key events.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// PressEnter sends the Enter key.
func (d *Driver) PressEnter() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEnter})
}

// PressEsc sends the Escape key.
func (d *Driver) PressEsc() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEsc})
}

// PressUp sends the Up arrow key.
func (d *Driver) PressUp() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyUp})
}

// PressDown sends the Down arrow key.
func (d *Driver) PressDown() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyDown})
}

// View returns the rendered output of the current model.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDrainDepth {
		d.T.Logf("teatest: drain depth limit (%d) reached", maxDrainDepth)
		return
	}

	msg := execCmdWithTimeout(cmd)
	if msg == nil || isCursorBlink(msg) {
		return
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			if sub != nil {
				d.drainCmd(sub, depth+1)
			}
		}
		return
	}

	if _, isQuit := msg.(tea.QuitMsg); isQuit {
		d.Quitting = true
		updated, _ := d.Model.Update(msg)
		d.Model = updated
		return
	}

	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(next, depth+1)
}

// execCmdWithTimeout runs a Cmd in a goroutine; a Cmd that does not return
// within cmdTimeout is treated as a blocking timer and skipped.
func execCmdWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isCursorBlink detects messages from the bubbles/cursor package, whose
// unexported blink types chain into blocking timer Cmds when processed.
func isCursorBlink(msg tea.Msg) bool {
	t := fmt.Sprintf("%T", msg)
	return strings.Contains(t, "Blink") || strings.Contains(t, "blink")
}
