package export

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Engine names accepted in configuration.
const (
	EngineHTML        = "html"
	EngineWkhtmltopdf = "wkhtmltopdf"
)

// Artifact is a produced export.
type Artifact struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Engine produces an artifact from a printable document.
type Engine interface {
	Name() string
	Export(ctx context.Context, doc Document, opts Options) (Artifact, error)
}

// HTMLEngine returns the sanitized printable page as HTML, for clients that
// rasterize in the browser.
type HTMLEngine struct{}

// Name implements Engine.
func (HTMLEngine) Name() string { return EngineHTML }

// Export implements Engine.
func (HTMLEngine) Export(ctx context.Context, doc Document, opts Options) (Artifact, error) {
	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}
	page, err := printable(doc, opts)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{
		Filename:    withExt(opts.Filename, ".html"),
		ContentType: "text/html; charset=utf-8",
		Body:        page,
	}, nil
}

// runFunc executes the converter with stdin and returns stdout.
type runFunc func(ctx context.Context, bin string, args []string, stdin []byte) ([]byte, error)

// WkhtmltopdfEngine pipes the printable page through the wkhtmltopdf binary.
type WkhtmltopdfEngine struct {
	Bin string
	run runFunc
}

// NewWkhtmltopdfEngine resolves the binary. An empty path searches PATH.
func NewWkhtmltopdfEngine(bin string) (*WkhtmltopdfEngine, error) {
	if strings.TrimSpace(bin) == "" {
		bin = "wkhtmltopdf"
	}
	resolved, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrEngineUnavailable, bin, err)
	}
	return &WkhtmltopdfEngine{Bin: resolved, run: runCommand}, nil
}

// Name implements Engine.
func (e *WkhtmltopdfEngine) Name() string { return EngineWkhtmltopdf }

// Export implements Engine.
func (e *WkhtmltopdfEngine) Export(ctx context.Context, doc Document, opts Options) (Artifact, error) {
	page, err := printable(doc, opts)
	if err != nil {
		return Artifact{}, err
	}
	out, err := e.run(ctx, e.Bin, wkhtmltopdfArgs(opts), page)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{
		Filename:    withExt(opts.Filename, ".pdf"),
		ContentType: "application/pdf",
		Body:        out,
	}, nil
}

func wkhtmltopdfArgs(opts Options) []string {
	margin := strconv.FormatFloat(opts.MarginMM, 'f', -1, 64) + "mm"
	orientation := "Portrait"
	if opts.Orientation == OrientationLandscape {
		orientation = "Landscape"
	}
	return []string{
		"--quiet",
		"--page-size", opts.PageSize,
		"--orientation", orientation,
		"--margin-top", margin,
		"--margin-bottom", margin,
		"--margin-left", margin,
		"--margin-right", margin,
		"--zoom", strconv.FormatFloat(opts.Scale, 'f', -1, 64),
		"--image-quality", strconv.Itoa(int(opts.ImageQuality * 100)),
		"--print-media-type",
		"-", "-",
	}
}

func runCommand(ctx context.Context, bin string, args []string, stdin []byte) ([]byte, error) {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = bytes.NewReader(stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("wkhtmltopdf: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// NewEngine picks the engine named in configuration.
func NewEngine(name, wkhtmltopdfPath string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EngineHTML:
		return HTMLEngine{}, nil
	case EngineWkhtmltopdf:
		return NewWkhtmltopdfEngine(wkhtmltopdfPath)
	default:
		return nil, fmt.Errorf("%w: unknown engine %q", ErrEngineUnavailable, name)
	}
}
