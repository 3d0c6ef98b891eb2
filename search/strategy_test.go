package search

import "testing"

func TestOrderingKeys(t *testing.T) {
	tests := []struct {
		name     string
		ordering Ordering
		g, h     float64
		wantF    float64
	}{
		{"astar sums g and h", OrderAStar(), 3, 4, 7},
		{"weighted scales h", OrderWeightedAStar(DefaultWeight), 3, 4, 23},
		{"greedy ignores g", OrderGreedy(), 3, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := tt.ordering.MakeKey(tt.g, tt.h, 9)
			if key.F != tt.wantF {
				t.Errorf("F = %v, want %v", key.F, tt.wantF)
			}
			if key.H != tt.h {
				t.Errorf("H = %v, want %v", key.H, tt.h)
			}
			if key.Tie != 9 {
				t.Errorf("Tie = %v, want 9", key.Tie)
			}
		})
	}
}

func TestKeyLess(t *testing.T) {
	tests := []struct {
		name string
		a, b Key
		want bool
	}{
		{"smaller f wins", Key{F: 1, H: 9, Tie: 9}, Key{F: 2, H: 0, Tie: 0}, true},
		{"equal f, smaller h wins", Key{F: 2, H: 1, Tie: 9}, Key{F: 2, H: 2, Tie: 0}, true},
		{"equal f and h, earlier tie wins", Key{F: 2, H: 1, Tie: 0}, Key{F: 2, H: 1, Tie: 1}, true},
		{"identical keys not less", Key{F: 2, H: 1, Tie: 1}, Key{F: 2, H: 1, Tie: 1}, false},
		{"larger f loses", Key{F: 3, H: 0, Tie: 0}, Key{F: 2, H: 9, Tie: 9}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Less(tt.b); got != tt.want {
				t.Errorf("Less() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusGoal, "goal"},
		{StatusExhausted, "exhausted"},
		{StatusTimedOut, "timeout"},
		{Status(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", int(tt.status), got, tt.want)
		}
	}
}
