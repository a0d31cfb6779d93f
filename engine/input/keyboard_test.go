package input

import (
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy4d/common"
)

func TestKeyboardPressEdge(t *testing.T) {
	k := NewKeyboard()
	k.KeyDown(common.KeyQ)

	if !k.JustPressed(common.KeyQ) || !k.Pressed(common.KeyQ) {
		t.Fatal("press not recorded")
	}
	k.EndTick()
	if k.JustPressed(common.KeyQ) {
		t.Error("edge survived EndTick")
	}
	if !k.Pressed(common.KeyQ) {
		t.Error("held state cleared by EndTick")
	}
}

func TestKeyboardIgnoresRepeat(t *testing.T) {
	k := NewKeyboard()
	k.KeyDown(common.KeyE)
	k.EndTick()
	k.KeyDown(common.KeyE)
	if k.JustPressed(common.KeyE) {
		t.Error("repeat while held produced a new edge")
	}

	k.KeyUp(common.KeyE)
	if k.Pressed(common.KeyE) {
		t.Error("key still held after KeyUp")
	}
	k.KeyDown(common.KeyE)
	if !k.JustPressed(common.KeyE) {
		t.Error("press after release produced no edge")
	}
}

func TestKeyboardTapWithinTick(t *testing.T) {
	k := NewKeyboard()
	k.KeyDown(common.KeyQ)
	k.KeyUp(common.KeyQ)
	if !k.JustPressed(common.KeyQ) {
		t.Error("tap released within the tick was lost")
	}
	if k.Pressed(common.KeyQ) {
		t.Error("released key reported as held")
	}
}

func TestKeyboardReset(t *testing.T) {
	k := NewKeyboard()
	k.KeyDown(common.KeyLeftShift)
	k.KeyDown(common.KeyQ)
	k.Reset()
	if k.Pressed(common.KeyLeftShift) || k.JustPressed(common.KeyQ) {
		t.Error("Reset left keys down")
	}
}

func TestKeyboardConcurrentAccess(t *testing.T) {
	k := NewKeyboard()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(code uint32) {
			defer wg.Done()
			for range 100 {
				k.KeyDown(code)
				_ = k.Pressed(code)
				k.KeyUp(code)
			}
		}(uint32(common.KeyA + i))
	}
	wg.Wait()
	for i := range 8 {
		if k.Pressed(uint32(common.KeyA + i)) {
			t.Errorf("key %d still held", common.KeyA+i)
		}
	}
}
