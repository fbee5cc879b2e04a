package glyph

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTemplatePNG(t *testing.T, dir, name string, sym Symbol) {
	t.Helper()
	bm, ok := RenderSymbol(sym, TemplateWidth, TemplateHeight)
	if !ok {
		t.Fatalf("no builtin raster for %q", sym)
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	defer f.Close()
	if err := png.Encode(f, bm.ToGray()); err != nil {
		t.Fatalf("encode %s: %v", name, err)
	}
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeTemplatePNG(t, dir, "7.png", '7')
	writeTemplatePNG(t, dir, "7_2.png", '7')
	writeTemplatePNG(t, dir, "dot.png", DecimalPoint)
	writeTemplatePNG(t, dir, "percent.png", Percent)
	// Non-template files are skipped.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	reg, err := LoadDirectory(dir)
	if err != nil {
		t.Fatalf("LoadDirectory failed: %v", err)
	}
	if !reg.Has('7') || !reg.Has(DecimalPoint) || !reg.Has(Percent) {
		t.Error("loaded registry missing expected symbols")
	}
	if got := len(reg.Templates('7')); got != 2 {
		t.Errorf("variant templates for 7: got %d, want 2", got)
	}

	// A loaded template classifies its own source glyph exactly.
	c := NewClassifier(reg, 0)
	sample := renderOrFail(t, '7', TemplateWidth, TemplateHeight)
	res := c.Classify(sample)
	if res.Unclassified || res.Symbol != '7' {
		t.Errorf("round-trip classify: got %q (unclassified=%v)", res.Symbol, res.Unclassified)
	}
}

func TestLoadDirectory_Errors(t *testing.T) {
	if _, err := LoadDirectory(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("missing directory should fail")
	}

	empty := t.TempDir()
	if _, err := LoadDirectory(empty); err == nil {
		t.Error("directory with no templates should fail")
	}

	bad := t.TempDir()
	writeTemplatePNG(t, bad, "ok.png", '1')
	if _, err := LoadDirectory(bad); err == nil {
		t.Error("multi-rune template name should fail")
	}

	corrupt := t.TempDir()
	if err := os.WriteFile(filepath.Join(corrupt, "3.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDirectory(corrupt); err == nil {
		t.Error("undecodable template should fail")
	}
}
