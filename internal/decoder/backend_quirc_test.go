package decoder

import "testing"

func TestEccFromQuirc_KnownLevels(t *testing.T) {
	cases := []struct {
		level int
		want  EccLevel
	}{
		{0, EccM},
		{1, EccL},
		{2, EccH},
		{3, EccQ},
	}
	for _, c := range cases {
		if got := eccFromQuirc(c.level); got != c.want {
			t.Errorf("eccFromQuirc(%d) = %v, want %v", c.level, got, c.want)
		}
	}
}

func TestEccFromQuirc_UnknownLevel_DefaultsToM(t *testing.T) {
	if got := eccFromQuirc(99); got != EccM {
		t.Errorf("eccFromQuirc(99) = %v, want EccM", got)
	}
	if got := eccFromQuirc(-1); got != EccM {
		t.Errorf("eccFromQuirc(-1) = %v, want EccM", got)
	}
}
