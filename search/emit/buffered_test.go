package emit

import "testing"

func seedEvents(b *BufferedEmitter) {
	b.Emit(Event{SearchID: "s1", Msg: MsgSearchStart, Expansions: 0})
	b.Emit(Event{SearchID: "s1", Msg: MsgNewBestH, Expansions: 3})
	b.Emit(Event{SearchID: "s1", Msg: MsgNewBestH, Expansions: 9})
	b.Emit(Event{SearchID: "s1", Msg: MsgGoalFound, Expansions: 12})
	b.Emit(Event{SearchID: "s2", Msg: MsgSearchStart, Expansions: 0})
}

func TestBufferedEmitterHistory(t *testing.T) {
	b := NewBufferedEmitter()
	seedEvents(b)

	history := b.GetHistory("s1")
	if len(history) != 4 {
		t.Fatalf("history length = %d, want 4", len(history))
	}
	if history[0].Msg != MsgSearchStart || history[3].Msg != MsgGoalFound {
		t.Errorf("history out of emission order: %v ... %v", history[0].Msg, history[3].Msg)
	}

	if got := b.GetHistory("unknown"); got == nil || len(got) != 0 {
		t.Errorf("GetHistory(unknown) = %v, want empty non-nil", got)
	}
}

func TestBufferedEmitterHistoryIsACopy(t *testing.T) {
	b := NewBufferedEmitter()
	seedEvents(b)

	history := b.GetHistory("s1")
	history[0].Msg = "mutated"

	if got := b.GetHistory("s1")[0].Msg; got != MsgSearchStart {
		t.Errorf("stored event mutated through returned slice: %q", got)
	}
}

func TestBufferedEmitterFilter(t *testing.T) {
	b := NewBufferedEmitter()
	seedEvents(b)

	t.Run("by message", func(t *testing.T) {
		got := b.GetHistoryWithFilter("s1", HistoryFilter{Msg: MsgNewBestH})
		if len(got) != 2 {
			t.Errorf("filtered length = %d, want 2", len(got))
		}
	})

	t.Run("by expansion range", func(t *testing.T) {
		minExp, maxExp := 1, 10
		got := b.GetHistoryWithFilter("s1", HistoryFilter{MinExpansions: &minExp, MaxExpansions: &maxExp})
		if len(got) != 2 {
			t.Fatalf("filtered length = %d, want 2", len(got))
		}
		for _, ev := range got {
			if ev.Expansions < minExp || ev.Expansions > maxExp {
				t.Errorf("event expansions %d outside [%d, %d]", ev.Expansions, minExp, maxExp)
			}
		}
	})

	t.Run("no match", func(t *testing.T) {
		got := b.GetHistoryWithFilter("s1", HistoryFilter{Msg: MsgArchiveFailed})
		if got == nil || len(got) != 0 {
			t.Errorf("filtered = %v, want empty non-nil", got)
		}
	})
}

func TestBufferedEmitterClear(t *testing.T) {
	t.Run("single search", func(t *testing.T) {
		b := NewBufferedEmitter()
		seedEvents(b)

		b.Clear("s1")
		if got := len(b.GetHistory("s1")); got != 0 {
			t.Errorf("history after Clear = %d events, want 0", got)
		}
		if got := len(b.GetHistory("s2")); got != 1 {
			t.Errorf("unrelated history = %d events, want 1", got)
		}
	})

	t.Run("everything", func(t *testing.T) {
		b := NewBufferedEmitter()
		seedEvents(b)

		b.Clear("")
		if got := len(b.GetHistory("s1")) + len(b.GetHistory("s2")); got != 0 {
			t.Errorf("history after Clear(\"\") = %d events, want 0", got)
		}
	})
}
