package gui

import (
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/runecast/internal/runes"
)

const fizzleFile = "fizzle.wav"

// soundBank plays one sample per rune plus the fizzle. Missing files are
// silent.
type soundBank struct {
	runeSounds [runes.Count]rl.Sound
	loaded     [runes.Count]bool
	fizzle     rl.Sound
	hasFizzle  bool
}

func runeSoundFile(dir string, r runes.Rune) string {
	return filepath.Join(dir, "rune_"+r.String()+".wav")
}

func loadSoundBank(dir string) *soundBank {
	b := &soundBank{}
	if dir == "" || !rl.IsAudioDeviceReady() {
		return b
	}
	for _, r := range runes.All() {
		if s, ok := loadSound(runeSoundFile(dir, r)); ok {
			b.runeSounds[r] = s
			b.loaded[r] = true
		}
	}
	if s, ok := loadSound(filepath.Join(dir, fizzleFile)); ok {
		b.fizzle = s
		b.hasFizzle = true
	}
	return b
}

func loadSound(path string) (rl.Sound, bool) {
	if _, err := os.Stat(path); err != nil {
		return rl.Sound{}, false
	}
	s := rl.LoadSound(path)
	if s.FrameCount == 0 {
		return rl.Sound{}, false
	}
	return s, true
}

func (b *soundBank) PlayRune(r runes.Rune) {
	if r.Valid() && b.loaded[r] {
		rl.PlaySound(b.runeSounds[r])
	}
}

func (b *soundBank) PlayFizzle() {
	if b.hasFizzle {
		rl.PlaySound(b.fizzle)
	}
}

func (b *soundBank) Unload() {
	for r := range b.runeSounds {
		if b.loaded[r] {
			rl.UnloadSound(b.runeSounds[r])
		}
	}
	if b.hasFizzle {
		rl.UnloadSound(b.fizzle)
	}
	*b = soundBank{}
}
