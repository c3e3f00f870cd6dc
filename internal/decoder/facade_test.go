package decoder

import (
	"testing"

	"github.com/qrvalidate/qrvalidate/internal/pixel"
)

type fakeBackend struct {
	n       Backend
	outcome Outcome
	calls   *int
}

func (f fakeBackend) name() Backend { return f.n }
func (f fakeBackend) decode(l *pixel.LumaFrame) Outcome {
	if f.calls != nil {
		*f.calls++
	}
	return f.outcome
}

func withBackends(t *testing.T, bs []backend) {
	t.Helper()
	orig := backends
	backends = bs
	t.Cleanup(func() { backends = orig })
}

func TestAttempt_FirstBackendWinsWithoutCallingSecond(t *testing.T) {
	var bCalls int
	withBackends(t, []backend{
		fakeBackend{n: BackendZXing, outcome: success("hello", 2, EccM, BackendZXing)},
		fakeBackend{n: BackendQuirc, outcome: failure(), calls: &bCalls},
	})

	out := Attempt(&pixel.LumaFrame{Width: 1, Height: 1, Pix: []byte{0}})
	if !out.Success || out.Content != "hello" {
		t.Fatalf("Attempt = %+v, want success hello", out)
	}
	if bCalls != 0 {
		t.Errorf("second backend called %d times, want 0", bCalls)
	}
}

func TestAttempt_FallsBackToSecond(t *testing.T) {
	withBackends(t, []backend{
		fakeBackend{n: BackendZXing, outcome: failure()},
		fakeBackend{n: BackendQuirc, outcome: success("world", 1, EccL, BackendQuirc)},
	})

	out := Attempt(&pixel.LumaFrame{Width: 1, Height: 1, Pix: []byte{0}})
	if !out.Success || out.Content != "world" {
		t.Fatalf("Attempt = %+v, want success world", out)
	}
	if len(out.Meta.Backends) != 1 || out.Meta.Backends[0] != BackendQuirc {
		t.Errorf("backends = %v, want [quirc]", out.Meta.Backends)
	}
}

func TestAttempt_BothFail(t *testing.T) {
	withBackends(t, []backend{
		fakeBackend{n: BackendZXing, outcome: failure()},
		fakeBackend{n: BackendQuirc, outcome: failure()},
	})
	out := Attempt(&pixel.LumaFrame{Width: 1, Height: 1, Pix: []byte{0}})
	if out.Success {
		t.Fatalf("Attempt = %+v, want failure", out)
	}
}

func TestAttemptBoth_RecordsBothBackends(t *testing.T) {
	withBackends(t, []backend{
		fakeBackend{n: BackendZXing, outcome: success("x", 2, EccM, BackendZXing)},
		fakeBackend{n: BackendQuirc, outcome: success("x", 2, EccM, BackendQuirc)},
	})
	out := AttemptBoth(&pixel.LumaFrame{Width: 1, Height: 1, Pix: []byte{0}})
	if !out.Success || len(out.Meta.Backends) != 2 {
		t.Fatalf("AttemptBoth = %+v, want both backends recorded", out)
	}
}

func TestAttemptBoth_OneFails(t *testing.T) {
	withBackends(t, []backend{
		fakeBackend{n: BackendZXing, outcome: success("x", 2, EccM, BackendZXing)},
		fakeBackend{n: BackendQuirc, outcome: failure()},
	})
	out := AttemptBoth(&pixel.LumaFrame{Width: 1, Height: 1, Pix: []byte{0}})
	if !out.Success || len(out.Meta.Backends) != 1 {
		t.Fatalf("AttemptBoth = %+v, want single backend recorded", out)
	}
}

func TestMetadataInvariant_ModulesMatchesVersion(t *testing.T) {
	for v := 1; v <= 40; v++ {
		out := success("x", v, EccM, BackendZXing)
		if out.Meta.Modules != 4*v+17 {
			t.Errorf("version %d: modules = %d, want %d", v, out.Meta.Modules, 4*v+17)
		}
	}
}

func TestMinVersionForBytes_Monotonic(t *testing.T) {
	prev := 0
	for _, n := range []int{1, 10, 50, 500, 2000} {
		v := minVersionForBytes(n, EccM)
		if v < prev {
			t.Errorf("minVersionForBytes(%d) = %d, not monotonic after %d", n, v, prev)
		}
		prev = v
	}
}
