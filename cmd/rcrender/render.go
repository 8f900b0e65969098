package main

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/npillmayer/rendercore/dom"
	"github.com/npillmayer/rendercore/dom/style"
	"github.com/npillmayer/rendercore/dom/style/css"
	"github.com/npillmayer/rendercore/dom/style/cssom"
	"github.com/npillmayer/rendercore/dom/style/cssom/cssparser"
	"github.com/npillmayer/rendercore/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/rendercore/layout"
	"github.com/npillmayer/rendercore/render"
)

// source is a stylesheet to apply, with a name for diagnostics.
type source struct {
	name string
	css  string
}

// pipeline holds the results of rendering a document.
type pipeline struct {
	sheet  *cssom.StyleSheet
	boxes  *layout.Box
	canvas *render.Canvas
}

func runRender(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	cfg := env.Cfg
	if cmd.Args().Len() != 1 {
		return errors.New("expected exactly one HTML file")
	}
	if cmd.IsSet("width") {
		cfg.Viewport.Width = int(cmd.Int("width"))
	}
	if cmd.IsSet("height") {
		cfg.Viewport.Height = int(cmd.Int("height"))
	}
	if cmd.IsSet("lenient") {
		cfg.Lenient = cmd.Bool("lenient")
	}
	if cmd.Bool("no-ua") {
		cfg.UserAgent = false
	}
	cfg.Stylesheets = append(cfg.Stylesheets, cmd.StringSlice("css")...)
	if cmd.IsSet("out") {
		cfg.Output = cmd.String("out")
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	in := cmd.Args().First()
	markup, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("unable to read document: %w", err)
	}
	var sheets []source
	for _, fname := range cfg.Stylesheets {
		data, err := os.ReadFile(fname)
		if err != nil {
			return fmt.Errorf("unable to read stylesheet: %w", err)
		}
		sheets = append(sheets, source{name: fname, css: string(data)})
	}
	p, err := renderDocument(env.Log, string(markup), sheets, cfg)
	if err != nil {
		return err
	}
	if cmd.Bool("dump") {
		fmt.Println(layout.Dump(p.boxes))
	}

	out := cfg.Output
	if out == "" {
		out = strings.TrimSuffix(in, filepath.Ext(in)) + ".png"
	}
	if err := writePNG(out, p.canvas); err != nil {
		return err
	}
	env.Log.Info("Image written", zap.String("file", out),
		zap.Int("width", p.canvas.Width), zap.Int("height", p.canvas.Height))
	return nil
}

// renderDocument runs the complete pipeline for an HTML document: collect
// stylesheets, style the <html> element, lay out and paint.
func renderDocument(log *zap.Logger, markup string, extra []source, cfg *Config) (*pipeline, error) {
	root, err := dom.Parse(markup)
	if err != nil {
		return nil, err
	}
	var sources []source
	if cfg.UserAgent {
		sources = append(sources, source{name: "user-agent", css: style.UserAgentCSS()})
	}
	sources = append(sources, extra...)
	for i, text := range douceuradapter.ExtractStyleElements(root) {
		sources = append(sources, source{name: fmt.Sprintf("<style> #%d", i+1), css: text})
	}
	p := &pipeline{}
	if p.sheet, err = parseStylesheets(log, sources, cfg.Lenient); err != nil {
		return nil, err
	}
	styled := cssom.Style(root, p.sheet)
	if css.DisplayOf(styled) == css.DisplayNone {
		return nil, errors.New("root element has display: none, nothing to render")
	}
	w, h := cfg.Viewport.Width, cfg.Viewport.Height
	p.boxes = layout.Layout(styled, layout.Viewport(float32(w), float32(h)))
	p.canvas = render.Paint(p.boxes, w, h)
	log.Debug("Document rendered", zap.Int("rules", len(p.sheet.Rules)), zap.Int("boxes", p.boxes.Size()))
	return p, nil
}

// parseStylesheets parses all sources into one stylesheet, in order. In
// lenient mode unsupported constructs are logged and skipped; otherwise the
// first syntax error is returned.
func parseStylesheets(log *zap.Logger, sources []source, lenient bool) (*cssom.StyleSheet, error) {
	sheet := &cssom.StyleSheet{}
	for _, src := range sources {
		var s *cssom.StyleSheet
		var err error
		if lenient {
			s, err = douceuradapter.ParseLenient(src.css)
			for _, e := range multierr.Errors(err) {
				log.Warn("CSS skipped", zap.String("stylesheet", src.name), zap.Error(e))
			}
			if s == nil {
				return nil, fmt.Errorf("stylesheet %s: %w", src.name, err)
			}
		} else if s, err = cssparser.Parse(src.css); err != nil {
			return nil, fmt.Errorf("stylesheet %s: %w", src.name, err)
		}
		sheet.AppendRules(s)
	}
	return sheet, nil
}

func writePNG(fname string, canvas *render.Canvas) error {
	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("unable to create image file '%s': %w", fname, err)
	}
	err = imaging.Encode(f, canvas.Image(), imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
	return multierr.Append(err, f.Close())
}
