package log

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	SetOutput(buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		DisableDebugModules(ModuleMaskAll)
	})
	return buf
}

func TestModuleByName(t *testing.T) {
	for _, name := range []string{"bit", "reg", "cli", "config"} {
		mod, ok := ModuleByName(name)
		if !ok {
			t.Fatalf("ModuleByName(%q) not found", name)
		}
		if mod.String() != name {
			t.Errorf("ModuleByName(%q).String() = %q", name, mod.String())
		}
	}
	if _, ok := ModuleByName("<error>"); ok {
		t.Errorf("ModuleByName(<error>) should not be found")
	}
	if _, ok := ModuleByName("foobar"); ok {
		t.Errorf("ModuleByName(foobar) should not be found")
	}
}

func TestDebugDisabledByDefault(t *testing.T) {
	buf := captureOutput(t)

	if z := ModReg.DebugZ("write"); z != nil {
		t.Fatalf("DebugZ returned non-nil entry for disabled module")
	}
	// Chaining on a disabled entry is a no-op.
	ModReg.DebugZ("write").Hex8("val", 0x12).Hex16("addr", 0x2b).End()
	ModReg.Debugf("write %d", 1)

	if buf.Len() != 0 {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestEnableDebugModules(t *testing.T) {
	buf := captureOutput(t)

	EnableDebugModules(ModReg.Mask())
	ModReg.DebugZ("write").
		Hex8("val", 0x12).
		Hex16("addr", 0x2b).
		Bool("ok", true).
		Uint("pos", 7).
		End()
	ModCLI.DebugZ("ignored").End()

	out := buf.String()
	for _, want := range []string{"_mod=reg", "write", "val=12", "addr=002b", "ok=true", "pos=7"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
	if strings.Contains(out, "ignored") {
		t.Errorf("output %q contains a line from a disabled module", out)
	}
}

func TestWarningsAlwaysEnabled(t *testing.T) {
	buf := captureOutput(t)

	ModConfig.WarnZ("bad config").Error("err", errors.New("boom")).End()
	if out := buf.String(); !strings.Contains(out, "bad config") || !strings.Contains(out, "err=boom") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestNewModule(t *testing.T) {
	mod := NewModule("custom")
	if got, ok := ModuleByName("custom"); !ok || got != mod {
		t.Fatalf("ModuleByName(custom) = %v, %v", got, ok)
	}
	names := ModuleNames()
	if names[len(names)-1] != "custom" {
		t.Errorf("ModuleNames() = %v, custom missing", names)
	}
}

func TestLevels(t *testing.T) {
	buf := captureOutput(t)

	// Info needs the module enabled, warnings and errors don't.
	ModCLI.Infof("hidden %d", 1)
	ModCLI.InfoZ("hidden too").End()
	if buf.Len() != 0 {
		t.Fatalf("info emitted for a disabled module: %q", buf.String())
	}

	EnableDebugModules(ModCLI.Mask())
	ModCLI.Infof("info %d", 1)
	ModCLI.InfoZ("infoz").Int("n", -2).End()
	ModConfig.Warnf("warn %s", "w")
	ModConfig.Errorf("error %s", "e")
	ModConfig.ErrorZ("errorz").String("path", "x.toml").End()

	out := buf.String()
	for _, want := range []string{
		"level=info", `msg="info 1"`, "msg=infoz", "n=-2",
		"level=warning", `msg="warn w"`,
		"level=error", `msg="error e"`, "msg=errorz", "path=x.toml",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestPanicZ(t *testing.T) {
	buf := captureOutput(t)

	defer func() {
		if recover() == nil {
			t.Fatalf("PanicZ().End() did not panic")
		}
		if !strings.Contains(buf.String(), "invariant broken") {
			t.Errorf("panic not logged: %q", buf.String())
		}
	}()
	ModBit.PanicZ("invariant broken").Uint("pos", 9).End()
}
