package mpd

import "testing"

func TestSongFromAttrsParsesTagsAndDuration(t *testing.T) {
	s := songFromAttrs(attrs{
		"file":     "music/foo.flac",
		"Artist":   "Boards of Canada",
		"Title":    "Roygbiv",
		"duration": "118.5",
		"Id":       "42",
		"Pos":      "3",
	})

	if s.File != "music/foo.flac" {
		t.Fatalf("unexpected file: %q", s.File)
	}

	if title, ok := s.Tag("title"); !ok || title != "Roygbiv" {
		t.Fatalf("expected title tag, got %q ok=%v", title, ok)
	}

	if !s.HasDur || s.Duration.Seconds() != 118.5 {
		t.Fatalf("expected duration 118.5s, got %v has=%v", s.Duration, s.HasDur)
	}

	if !s.HasQueueID || s.QueueID != 42 {
		t.Fatalf("expected queue id 42, got %d has=%v", s.QueueID, s.HasQueueID)
	}

	if s.Pos != 3 {
		t.Fatalf("expected pos 3, got %d", s.Pos)
	}
}

func TestSongFromAttrsMissingFieldsAreAbsent(t *testing.T) {
	s := songFromAttrs(attrs{"file": "x.mp3"})

	if s.HasDur {
		t.Fatalf("expected HasDur false when duration omitted")
	}

	if s.HasQueueID {
		t.Fatalf("expected HasQueueID false for a library (non-queue) song")
	}

	if _, ok := s.Tag("artist"); ok {
		t.Fatalf("expected no artist tag")
	}
}

func TestStatusFromAttrsPlayingState(t *testing.T) {
	st := statusFromAttrs(attrs{
		"state":    "play",
		"repeat":   "1",
		"random":   "0",
		"single":   "oneshot",
		"consume":  "0",
		"volume":   "80",
		"elapsed":  "10.2",
		"duration": "200.0",
		"bitrate":  "320",
		"audio":    "44100:16:2",
		"song":     "2",
		"songid":   "99",
	})

	if st.State != StatePlaying {
		t.Fatalf("expected StatePlaying, got %v", st.State)
	}

	if !st.Repeat || st.Random {
		t.Fatalf("unexpected repeat/random: %v/%v", st.Repeat, st.Random)
	}

	if st.Single != TriOneShot {
		t.Fatalf("expected TriOneShot, got %v", st.Single)
	}

	if !st.HasBitrate || st.Bitrate != 320 {
		t.Fatalf("expected bitrate 320, got %d has=%v", st.Bitrate, st.HasBitrate)
	}

	if !st.HasSampleRate || st.SampleRate != 44100 || st.Bits != 16 || st.Channels != 2 {
		t.Fatalf("unexpected audio format: %+v", st)
	}

	if !st.HasSongIndex || st.SongIndex != 2 || !st.HasSongID || st.SongID != 99 {
		t.Fatalf("unexpected song index/id: %+v", st)
	}
}

func TestStatusFromAttrsClampsElapsedToDuration(t *testing.T) {
	st := statusFromAttrs(attrs{
		"state":    "play",
		"elapsed":  "999",
		"duration": "100",
	})

	if st.Elapsed != st.Duration {
		t.Fatalf("expected elapsed clamped to duration, got elapsed=%v duration=%v", st.Elapsed, st.Duration)
	}
}

func TestStatusFromAttrsDefaultsToStopped(t *testing.T) {
	st := statusFromAttrs(attrs{})

	if st.State != StateStopped {
		t.Fatalf("expected StateStopped for empty status, got %v", st.State)
	}

	if st.HasSongIndex || st.HasSongID {
		t.Fatalf("expected no song index/id on stopped/empty status")
	}
}
