//go:build ignore

// gen_rune_sounds.go – run with:
//
//	go run scripts/gen_rune_sounds.go [dir]
//
// Writes placeholder rune_<name>.wav chimes and a fizzle.wav for the drawing
// pad. Each rune gets its own semitone so sequences are audible. Replace with
// real samples at any time; the pad only looks at the file names.
package main

import (
	"bytes"
	"encoding/binary"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/appengine-ltd/runecast/internal/config"
	"github.com/appengine-ltd/runecast/internal/runes"
)

const sampleRate = 22050

func main() {
	dir := config.DefaultSoundDir()
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal(err)
	}

	for i, r := range runes.All() {
		freq := 220 * math.Pow(2, float64(i)/12)
		samples := chime(freq, 0.35)
		writeWAV(filepath.Join(dir, "rune_"+r.String()+".wav"), samples)
	}
	writeWAV(filepath.Join(dir, "fizzle.wav"), fizzle(0.5))

	log.Printf("Placeholder sounds written to %s", dir)
}

// chime is a sine with an exponential decay.
func chime(freq, seconds float64) []int16 {
	n := int(seconds * sampleRate)
	out := make([]int16, n)
	for i := range out {
		t := float64(i) / sampleRate
		env := math.Exp(-6 * t / seconds)
		out[i] = int16(0.6 * env * math.MaxInt16 * math.Sin(2*math.Pi*freq*t))
	}
	return out
}

// fizzle sweeps down from 440Hz with a square-ish edge.
func fizzle(seconds float64) []int16 {
	n := int(seconds * sampleRate)
	out := make([]int16, n)
	phase := 0.0
	for i := range out {
		t := float64(i) / sampleRate
		freq := 440 - 360*t/seconds
		phase += 2 * math.Pi * freq / sampleRate
		v := math.Tanh(3 * math.Sin(phase))
		out[i] = int16(0.4 * (1 - t/seconds) * math.MaxInt16 * v)
	}
	return out
}

type fmtChunk struct {
	Size       uint32
	Format     uint16
	Channels   uint16
	SampleRate uint32
	ByteRate   uint32
	BlockAlign uint16
	Bits       uint16
}

// writeWAV stores 16-bit mono PCM.
func writeWAV(path string, samples []int16) {
	var buf bytes.Buffer
	dataLen := uint32(len(samples) * 2)
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, 36+dataLen)
	buf.WriteString("WAVEfmt ")
	_ = binary.Write(&buf, binary.LittleEndian, fmtChunk{
		Size:       16,
		Format:     1, // PCM
		Channels:   1,
		SampleRate: sampleRate,
		ByteRate:   sampleRate * 2,
		BlockAlign: 2,
		Bits:       16,
	})
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, dataLen)
	_ = binary.Write(&buf, binary.LittleEndian, samples)

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		log.Fatal(err)
	}
}
