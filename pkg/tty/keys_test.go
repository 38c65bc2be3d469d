package tty

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/control"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		name   string
		ev     *tcell.EventKey
		want   string
		wantOK bool
	}{
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), keyArrowLeft, true},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), keyArrowRight, true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), keyEscape, true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), keyEnter, true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), keySpace, true},
		{"lower letter", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), "a", true},
		{"upper letter", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone), "d", true},
		{"punctuation", tcell.NewEventKey(tcell.KeyRune, '!', tcell.ModNone), "", false},
		{"non ascii", tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone), "", false},
		{"function key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MapKey(tt.ev)
			if ok != tt.wantOK {
				t.Fatalf("MapKey() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("MapKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseBindings(t *testing.T) {
	b, err := ParseBindings(config.DefaultWorldConfig().Keys)
	if err != nil {
		t.Fatalf("ParseBindings() error = %v", err)
	}
	want := Bindings{Left: keyArrowLeft, Right: keyArrowRight, Fire: keySpace, Quit: keyEscape}
	if b != want {
		t.Errorf("ParseBindings() = %+v, want %+v", b, want)
	}

	// 大小写和别名与 Ebitengine 键名一致
	b, err = ParseBindings(config.KeyBindings{Left: "Left", Right: "D", Fire: "ENTER", Quit: "q"})
	if err != nil {
		t.Fatalf("ParseBindings() error = %v", err)
	}
	want = Bindings{Left: keyArrowLeft, Right: "d", Fire: keyEnter, Quit: "q"}
	if b != want {
		t.Errorf("ParseBindings() = %+v, want %+v", b, want)
	}
}

func TestParseBindingsUnavailableKey(t *testing.T) {
	kb := config.DefaultWorldConfig().Keys
	kb.Fire = "F5"

	if _, err := ParseBindings(kb); err == nil {
		t.Error("function keys cannot be bound in the terminal")
	}
}

func TestKeyTrackerHoldAndRelease(t *testing.T) {
	kt := NewKeyTracker(3)
	kt.Press(keySpace)

	for i := 0; i < 3; i++ {
		if !kt.IsHeld(keySpace) {
			t.Fatalf("frame %d: key should still be held", i)
		}
		kt.Tick()
	}
	if kt.IsHeld(keySpace) {
		t.Error("key should be released after hold frames elapse")
	}
}

func TestKeyTrackerRepeatRefreshesHold(t *testing.T) {
	kt := NewKeyTracker(2)
	kt.Press(keyArrowLeft)

	// 自动重复事件不断刷新按住时长
	for i := 0; i < 10; i++ {
		kt.Tick()
		kt.Press(keyArrowLeft)
		if !kt.IsHeld(keyArrowLeft) {
			t.Fatalf("frame %d: repeated key should stay held", i)
		}
	}
	if kt.IsHeld(keyArrowRight) {
		t.Error("unpressed key should not be held")
	}
}

func TestNewKeyTrackerDefaultHold(t *testing.T) {
	kt := NewKeyTracker(0)
	if kt.holdFrames != DefaultHoldFrames {
		t.Errorf("expected default hold %d, got %d", DefaultHoldFrames, kt.holdFrames)
	}
}

func TestPollerFireInsideHoldWindowIsOnePress(t *testing.T) {
	kt := NewKeyTracker(4)
	b, err := ParseBindings(config.DefaultWorldConfig().Keys)
	if err != nil {
		t.Fatal(err)
	}
	p := NewPoller(kt, b)

	var states []control.State
	step := func(press bool) {
		if press {
			kt.Press(keySpace)
		}
		states = append(states, p.Poll())
		kt.Tick()
	}

	step(true)  // 第一次按下
	step(false) // 仍在按住时长内
	step(true)  // 再次按键与自动重复无法区分
	for i := 0; i < 4; i++ {
		step(false) // 按住时长耗尽
	}
	step(true) // 松开之后的按键才是新的一次

	fires := 0
	for _, s := range states {
		if s.Fire {
			fires++
		}
	}
	if fires != 2 {
		t.Errorf("expected 2 fire events, got %d", fires)
	}
	if !states[0].Fire || states[2].Fire || !states[len(states)-1].Fire {
		t.Errorf("unexpected fire pattern: %+v", states)
	}
}
