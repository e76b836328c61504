package settings

import (
	"errors"
	"os"
	"testing"
)

// chdirTemp is t.Chdir(t.TempDir()) for toolchains before Go 1.24.
func chdirTemp(t *testing.T) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestOpenCreatesFile(t *testing.T) {
	chdirTemp(t)

	st, err := Open("overlay")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if st == nil {
		t.Fatal("Open returned nil store")
	}

	if _, err := os.Stat("settings/overlay.toml"); err != nil {
		t.Errorf("backing file not created: %v", err)
	}
}

func TestSetAndGet(t *testing.T) {
	chdirTemp(t)

	st, err := Open("test")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	st.Set("window.x", int64(120))
	st.Set("window.caption", "Console")
	st.Set("window.visible", true)
	st.Set("window.scale", 1.5)

	if v, err := st.GetInt64("window.x"); err != nil || v != 120 {
		t.Errorf("GetInt64 = %v, %v, want 120", v, err)
	}
	if v, err := st.GetString("window.caption"); err != nil || v != "Console" {
		t.Errorf("GetString = %q, %v, want %q", v, err, "Console")
	}
	if v, err := st.GetBool("window.visible"); err != nil || !v {
		t.Errorf("GetBool = %v, %v, want true", v, err)
	}
	if v, err := st.GetFloat64("window.scale"); err != nil || v != 1.5 {
		t.Errorf("GetFloat64 = %v, %v, want 1.5", v, err)
	}
}

func TestSetPersists(t *testing.T) {
	chdirTemp(t)

	st, err := Open("test")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	st.Set("deeply.nested.value", int64(7))

	reopened, err := Open("test")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if v, err := reopened.GetInt64("deeply.nested.value"); err != nil || v != 7 {
		t.Errorf("after reopen GetInt64 = %v, %v, want 7", v, err)
	}
}

func TestDefaults(t *testing.T) {
	chdirTemp(t)

	st, err := Open("test")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	st.SetDefault("ui.font.size", int64(14))

	if v, err := st.GetInt64("ui.font.size"); err != nil || v != 14 {
		t.Errorf("default GetInt64 = %v, %v, want 14", v, err)
	}

	st.Set("ui.font.size", int64(18))
	if v, err := st.GetInt64("ui.font.size"); err != nil || v != 18 {
		t.Errorf("stored value should win over default, got %v, %v", v, err)
	}

	// A stored value of the wrong type falls through to the default.
	st.Set("ui.font.name", int64(3))
	st.SetDefault("ui.font.name", "monospace")
	if v, err := st.GetString("ui.font.name"); err != nil || v != "monospace" {
		t.Errorf("GetString = %q, %v, want fallback to default", v, err)
	}

	// Defaults never reach the file.
	reopened, err := Open("test")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if _, err := reopened.GetInt64("ui.font.size2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unset path after reopen: err = %v, want ErrNotFound", err)
	}
}

func TestGetErrors(t *testing.T) {
	chdirTemp(t)

	st, err := Open("test")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if _, err := st.GetString("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing path: err = %v, want ErrNotFound", err)
	}

	st.Set("count", int64(3))
	if _, err := st.GetString("count"); !errors.Is(err, ErrType) {
		t.Errorf("mistyped path: err = %v, want ErrType", err)
	}
	if _, err := st.GetBool("count"); !errors.Is(err, ErrType) {
		t.Errorf("mistyped path: err = %v, want ErrType", err)
	}
}

func TestRemove(t *testing.T) {
	chdirTemp(t)

	st, err := Open("test")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	st.Set("a.b", int64(1))
	if !st.Remove("a.b") {
		t.Error("Remove = false, want true for present value")
	}
	if st.Remove("a.b") {
		t.Error("Remove = true, want false for absent value")
	}
	if _, err := st.GetInt64("a.b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("after remove: err = %v, want ErrNotFound", err)
	}
}

func TestSetBlockedByScalar(t *testing.T) {
	chdirTemp(t)

	st, err := Open("test")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	st.Set("leaf", int64(5))
	st.Set("leaf.child", int64(9))

	if v, err := st.GetInt64("leaf"); err != nil || v != 5 {
		t.Errorf("scalar overwritten: GetInt64 = %v, %v, want 5", v, err)
	}
	if _, err := st.GetInt64("leaf.child"); !errors.Is(err, ErrNotFound) {
		t.Errorf("blocked write landed anyway: err = %v", err)
	}
}

func TestNumericCoercion(t *testing.T) {
	chdirTemp(t)

	st, err := Open("test")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	st.Set("n", int64(40))
	if v, err := st.GetFloat64("n"); err != nil || v != 40.0 {
		t.Errorf("GetFloat64 on integer = %v, %v, want 40", v, err)
	}
	if v, err := st.GetUint64("n"); err != nil || v != 40 {
		t.Errorf("GetUint64 on integer = %v, %v, want 40", v, err)
	}

	st.Set("neg", int64(-1))
	if _, err := st.GetUint64("neg"); !errors.Is(err, ErrType) {
		t.Errorf("GetUint64 on negative: err = %v, want ErrType", err)
	}

	st.Set("f", 2.5)
	if _, err := st.GetInt64("f"); !errors.Is(err, ErrType) {
		t.Errorf("GetInt64 on float: err = %v, want ErrType", err)
	}
}

func TestGetColor(t *testing.T) {
	chdirTemp(t)

	st, err := Open("test")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	st.Set("colors.background", int64(0x3D4478FF))
	if v, err := st.GetColor("colors.background"); err != nil || v != 0x3D4478FF {
		t.Errorf("GetColor = %#x, %v, want 0x3D4478FF", v, err)
	}

	// Values wider than 32 bits truncate.
	st.Set("colors.wide", int64(0x1000000FF))
	if v, err := st.GetColor("colors.wide"); err != nil || v != 0x000000FF {
		t.Errorf("GetColor = %#x, %v, want 0xFF", v, err)
	}
}

func TestSaveOnSetOff(t *testing.T) {
	chdirTemp(t)

	st, err := Open("test")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	st.SetSaveOnSet(false)
	st.Set("pending", int64(1))

	reopened, err := Open("test")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if _, err := reopened.GetInt64("pending"); !errors.Is(err, ErrNotFound) {
		t.Errorf("value saved with save-on-set off: err = %v", err)
	}

	if err := st.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	reopened, err = Open("test")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if v, err := reopened.GetInt64("pending"); err != nil || v != 1 {
		t.Errorf("after explicit Save GetInt64 = %v, %v, want 1", v, err)
	}
}

func TestMustColorPanics(t *testing.T) {
	chdirTemp(t)

	st, err := Open("test")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustColor on a missing path did not panic")
		}
	}()
	st.MustColor("colors.never.registered")
}
