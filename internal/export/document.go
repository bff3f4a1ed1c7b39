package export

import (
	"bytes"
	"embed"
	"fmt"
	"strconv"
	"sync"

	"github.com/flosch/pongo2/v6"
)

//go:embed templates/print.tmpl
var templateFS embed.FS

// Document is the printable input: a rendered body fragment and the
// stylesheet it depends on.
type Document struct {
	Title  string
	Styles string
	Body   string
}

var (
	printOnce sync.Once
	printTpl  *pongo2.Template
	printErr  error
)

func printTemplate() (*pongo2.Template, error) {
	printOnce.Do(func() {
		set := pongo2.NewSet("export", pongo2.NewFSLoader(templateFS))
		printTpl, printErr = set.FromFile("templates/print.tmpl")
		if printErr != nil {
			printErr = fmt.Errorf("export: load print template: %w", printErr)
		}
	})
	return printTpl, printErr
}

// printable wraps the sanitized body in a standalone document carrying the
// page geometry from opts.
func printable(doc Document, opts Options) ([]byte, error) {
	tpl, err := printTemplate()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err = tpl.ExecuteWriter(pongo2.Context{
		"title":       doc.Title,
		"styles":      doc.Styles,
		"body":        Sanitize(doc.Body),
		"pageSize":    opts.PageSize,
		"orientation": opts.Orientation,
		"margin":      strconv.FormatFloat(opts.MarginMM, 'f', -1, 64) + "mm",
		"scale":       strconv.FormatFloat(opts.Scale, 'f', -1, 64),
	}, &buf)
	if err != nil {
		return nil, fmt.Errorf("export: execute print template: %w", err)
	}
	return buf.Bytes(), nil
}
