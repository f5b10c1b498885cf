package timefmt

import "testing"

func TestDuration(t *testing.T) {
	cases := []struct {
		ms   int64
		want string
	}{
		{0, ""},
		{1, "1ms"},
		{999, "999ms"},
		{1000, "1s"},
		{1500, "1s 500ms"},
		{59999, "59s 999ms"},
		{60000, "1m 0s"},
		{61000, "1m 1s"},
		{3600000, "1h 0m 0s"},
		{3600500, "1h 0m 0s"}, // ms dropped once a minutes segment is shown
		{3661000, "1h 1m 1s"},
		{-5, ""},
	}
	for _, c := range cases {
		if got := Duration(c.ms); got != c.want {
			t.Errorf("Duration(%d) = %q, want %q", c.ms, got, c.want)
		}
	}
}
