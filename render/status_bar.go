package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/hanoi/status"
)

// helpText is right-aligned on the status bar when it fits
const helpText = "click/space step · +/- discs · r reset · p pause · m mute · q quit "

// StatusText formats the left part of the status bar from published metrics
func StatusText(reg *status.Registry) string {
	var b strings.Builder
	fmt.Fprintf(&b, " discs %d │ step %d/%d │ %s │ %s │ %.0f fps",
		reg.Ints.Get(status.KeyDiscs).Load(),
		reg.Ints.Get(status.KeyStep).Load(),
		reg.Ints.Get(status.KeyTotal).Load(),
		reg.Strings.Get(status.KeyPhase).Load(),
		reg.Strings.Get(status.KeyMotion).Load(),
		reg.Floats.Get(status.KeyFPS).Get(),
	)
	if reg.Bools.Get(status.KeySolved).Load() {
		b.WriteString(" │ SOLVED")
	}
	if reg.Bools.Get(status.KeyPaused).Load() {
		b.WriteString(" │ PAUSED")
	}
	if reg.Bools.Get(status.KeyMuted).Load() {
		b.WriteString(" │ MUTED")
	}
	b.WriteByte(' ')
	return b.String()
}

// DrawStatusBar fills the last screen row
func DrawStatusBar(screen tcell.Screen, reg *status.Registry) {
	width, height := screen.Size()
	if width <= 0 || height <= 0 {
		return
	}
	y := height - 1

	bg := RgbStatusBg
	switch {
	case reg.Bools.Get(status.KeySolved).Load():
		bg = RgbSolvedBg
	case reg.Bools.Get(status.KeyPaused).Load():
		bg = RgbPausedBg
	}
	style := tcell.StyleDefault.Background(bg.Tcell()).Foreground(RgbStatusText.Tcell())
	helpStyle := tcell.StyleDefault.Background(RgbBackground.Tcell()).Foreground(RgbLabel.Tcell())

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, helpStyle)
	}

	left := []rune(StatusText(reg))
	for x, r := range left {
		if x >= width {
			return
		}
		screen.SetContent(x, y, r, nil, style)
	}

	help := []rune(helpText)
	if start := width - len(help); start > len(left)+1 {
		for i, r := range help {
			screen.SetContent(start+i, y, r, nil, helpStyle)
		}
	}
}
