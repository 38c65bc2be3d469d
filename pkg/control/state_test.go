package control

import "testing"

func TestEdgeDetector(t *testing.T) {
	var d EdgeDetector

	// 松开 -> 按下 -> 按住 -> 松开 -> 按下
	sequence := []bool{false, true, true, false, true}
	want := []bool{false, true, false, false, true}

	for i, pressed := range sequence {
		if got := d.Update(pressed); got != want[i] {
			t.Errorf("frame %d: Update(%v) = %v, want %v", i, pressed, got, want[i])
		}
	}

	d.Reset()
	if !d.Update(true) {
		t.Error("after Reset a held key should count as a new press")
	}
}

func TestEdgeDetectorHeldNeverRetriggers(t *testing.T) {
	var d EdgeDetector

	rising := 0
	for i := 0; i < 500; i++ {
		if d.Update(true) {
			rising++
		}
	}
	if rising != 1 {
		t.Errorf("holding for 500 frames produced %d rising edges, want 1", rising)
	}
}
