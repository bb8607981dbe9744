package web

import (
	"encoding/json"
	"io"
	"log"
	"net/http/httptest"
	"testing"

	"github.com/World-hackr/WAVE-VISUALIZER/internal/app"
	"github.com/World-hackr/WAVE-VISUALIZER/internal/render"
)

func TestStatusEndpointServesLatestSnapshot(t *testing.T) {
	m := NewMirror(log.New(io.Discard, "", 0))
	m.Publish(render.Frame{Width: 80, Height: 24}, app.Snapshot{
		File:   "clip.wav",
		State:  "playing",
		Factor: 3,
		Zoom:   500,
	})

	rec := httptest.NewRecorder()
	m.handleStatus(rec, httptest.NewRequest("GET", "/api/status", nil))

	var got app.Snapshot
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.File != "clip.wav" || got.State != "playing" || got.Factor != 3 {
		t.Fatalf("snapshot %+v", got)
	}
}

func TestPublishMarksDirtyOnce(t *testing.T) {
	m := NewMirror(log.New(io.Discard, "", 0))
	if m.dirty {
		t.Fatal("fresh mirror dirty")
	}
	m.Publish(render.Frame{}, app.Snapshot{})
	if !m.dirty {
		t.Fatal("publish did not mark dirty")
	}
}

func TestMessageRoundTrip(t *testing.T) {
	msg := Message{
		Frame: render.Frame{
			Width: 10, Height: 4,
			Segments: []render.Segment{{Kind: render.KindPlayhead, X0: 3, Y0: 0, X1: 3, Y1: 3}},
			Status:   "clip.wav | playing",
		},
		Status: app.Snapshot{File: "clip.wav"},
	}
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatal(err)
	}
	var back Message
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if len(back.Frame.Segments) != 1 || back.Frame.Segments[0].Kind != render.KindPlayhead {
		t.Fatalf("frame lost in transit: %+v", back.Frame)
	}
}
