package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

func TestChainAdvance(t *testing.T) {
	c := NewChain("music", "a.mp3", "b.mp3")

	if p, ok := c.Current(); !ok || p != "a.mp3" {
		t.Fatalf("Current = %q, %v; want a.mp3", p, ok)
	}
	if !c.Advance() {
		t.Fatal("Advance should report a remaining candidate")
	}
	if p, _ := c.Current(); p != "b.mp3" {
		t.Errorf("Current = %q, want b.mp3", p)
	}
	if c.Advance() {
		t.Error("Advance past the last candidate should return false")
	}
	if !c.Exhausted() {
		t.Error("chain should be exhausted")
	}
	if _, ok := c.Current(); ok {
		t.Error("exhausted chain has no current candidate")
	}
	c.Advance() // Stays exhausted

	c.Reset()
	if p, _ := c.Current(); p != "a.mp3" {
		t.Errorf("after Reset Current = %q, want a.mp3", p)
	}
}

func TestResolveTriesInOrder(t *testing.T) {
	c := NewChain("pop", "one", "two", "three", "four")
	var tried []string

	v, path, err := Resolve(c, func(p string) (int, error) {
		tried = append(tried, p)
		if p == "three" {
			return 3, nil
		}
		return 0, errors.New("missing")
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if v != 3 || path != "three" {
		t.Errorf("got %d from %q, want 3 from three", v, path)
	}
	if want := []string{"one", "two", "three"}; len(tried) != len(want) {
		t.Errorf("tried %v, want %v", tried, want)
	}
	if p, _ := c.Current(); p != "three" {
		t.Errorf("chain should stay on the working candidate, at %q", p)
	}
}

func TestResolveExhausted(t *testing.T) {
	loadErr := errors.New("boom")
	c := NewChain("bg", "x", "y")

	_, _, err := Resolve(c, func(string) (struct{}, error) {
		return struct{}{}, loadErr
	})
	if !errors.Is(err, ErrExhausted) {
		t.Errorf("expected ErrExhausted, got %v", err)
	}
	if !errors.Is(err, loadErr) {
		t.Errorf("expected last load error to be wrapped, got %v", err)
	}

	empty := NewChain("none")
	if _, _, err := Resolve(empty, func(string) (int, error) { return 1, nil }); !errors.Is(err, ErrExhausted) {
		t.Errorf("empty chain: expected ErrExhausted, got %v", err)
	}
}

func TestResolverReadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"audio/pop.wav": {Data: []byte("RIFF")},
	}
	r := NewResolver(fsys, nil)

	data, path, err := r.ReadFile(NewChain("pop", PopCandidates()...))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if path != "audio/pop.wav" || string(data) != "RIFF" {
		t.Errorf("got %q from %q", data, path)
	}
}

func TestResolverImageSkipsUndecodable(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 6))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}

	fsys := fstest.MapFS{
		"assets/balloons/mint.png": {Data: []byte("not an image")},
		"balloons/mint.png":        {Data: buf.Bytes()},
	}
	r := NewResolver(fsys, nil)

	got, path, err := r.Image(NewChain("balloon-mint", BalloonCandidates("mint")...))
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if path != "balloons/mint.png" {
		t.Errorf("path = %q, want balloons/mint.png", path)
	}
	if b := got.Bounds(); b.Dx() != 4 || b.Dy() != 6 {
		t.Errorf("bounds = %v", b)
	}
}

func TestResolverImageMissing(t *testing.T) {
	r := NewResolver(fstest.MapFS{}, nil)
	if _, _, err := r.Image(NewChain("background", BackgroundCandidates()...)); !errors.Is(err, ErrExhausted) {
		t.Errorf("expected ErrExhausted, got %v", err)
	}
}

func TestCandidateLists(t *testing.T) {
	tests := []struct {
		name  string
		list  []string
		first string
	}{
		{"background", BackgroundCandidates(), "assets/backgrounds/game-background.jpg"},
		{"music", MusicCandidates(), "assets/audio/music/theme.mp3"},
		{"pop", PopCandidates(), "assets/audio/sfx/pop.wav"},
		{"balloon", BalloonCandidates("rose"), "assets/balloons/rose.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.list) == 0 || tt.list[0] != tt.first {
				t.Errorf("first candidate = %v, want %q", tt.list, tt.first)
			}
		})
	}
}
