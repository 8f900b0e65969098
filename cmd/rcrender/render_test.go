package main

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"
)

const testDoc = `<!DOCTYPE html>
<html>
<head>
  <title>test</title>
  <style>
    body { background: #000080; }
    .box { background-color: #ff0000; width: 20px; height: 10px; margin-left: 5px; }
  </style>
</head>
<body>
  <div class="box"></div>
</body>
</html>`

func testConfig(t *testing.T) *Config {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Viewport.Width, cfg.Viewport.Height = 40, 30
	return cfg
}

func TestRenderDocument(t *testing.T) {
	log := zaptest.NewLogger(t)
	p, err := renderDocument(log, testDoc, nil, testConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	if p.canvas.Width != 40 || p.canvas.Height != 30 {
		t.Fatalf("canvas is %dx%d, want 40x30", p.canvas.Width, p.canvas.Height)
	}
	if px := p.canvas.At(5, 0); px != 0xffff0000 {
		t.Errorf("pixel (5,0) = %08x, want box color", px)
	}
	if px := p.canvas.At(4, 0); px != 0xff000080 {
		t.Errorf("pixel (4,0) = %08x, want body color", px)
	}
	if px := p.canvas.At(0, 20); px != 0xff000000 {
		t.Errorf("pixel (0,20) = %08x, want unpainted below body", px)
	}
}

func TestRenderDocumentExtraStylesheets(t *testing.T) {
	log := zaptest.NewLogger(t)
	extra := []source{{name: "extra", css: ".box { background-color: #00ff00; }"}}
	p, err := renderDocument(log, testDoc, extra, testConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	if px := p.canvas.At(5, 0); px != 0xffff0000 {
		t.Errorf("pixel (5,0) = %08x, want <style> to override extra stylesheets", px)
	}
}

func TestRenderDocumentStrictAndLenient(t *testing.T) {
	log := zaptest.NewLogger(t)
	doc := `<html><head><style>
		@media print { body { width: 1px } }
		div { display: block; height: 4px; background: #ffffff; }
	</style></head><body><div></div></body></html>`
	cfg := testConfig(t)
	if _, err := renderDocument(log, doc, nil, cfg); err == nil {
		t.Errorf("expected strict parsing to fail on @media")
	}
	cfg.Lenient = true
	p, err := renderDocument(log, doc, nil, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if px := p.canvas.At(0, 3); px != 0xffffffff {
		t.Errorf("pixel (0,3) = %08x, want div color", px)
	}
}

func TestRenderDocumentWithoutUserAgent(t *testing.T) {
	log := zaptest.NewLogger(t)
	cfg := testConfig(t)
	cfg.UserAgent = false
	p, err := renderDocument(log, testDoc, nil, cfg)
	if err != nil {
		t.Fatal(err)
	}
	for _, px := range p.canvas.Pixels {
		if px != 0xff000000 {
			t.Fatalf("expected nothing to be painted without block boxes, found %08x", px)
		}
	}
}

func TestWritePNG(t *testing.T) {
	p, err := renderDocument(zaptest.NewLogger(t), testDoc, nil, testConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	fname := filepath.Join(t.TempDir(), "out.png")
	if err := writePNG(fname, p.canvas); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Errorf("expected a PNG file")
	}
}
