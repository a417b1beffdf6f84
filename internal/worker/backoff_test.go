package worker

import "testing"

func TestBackoff(t *testing.T) {
	cases := []struct {
		retry int
		want  int32
	}{
		{retry: 1, want: 20},
		{retry: 2, want: 40},
		{retry: 5, want: 320},
		{retry: 9, want: 3600},  // capped
		{retry: 20, want: 3600}, // still capped
	}

	for _, tc := range cases {
		if got := Backoff(tc.retry); got != tc.want {
			t.Errorf("Backoff(%d) = %d, want %d", tc.retry, got, tc.want)
		}
	}
}
