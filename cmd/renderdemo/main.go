package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"resume-builder/resume/legacy"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

func main() {
	outDir := pflag.StringP("out", "o", "./out", "output directory for rendered pages")
	only := pflag.StringP("template", "t", "", "render a single template instead of all of them")
	thumbnail := pflag.Bool("thumbnail", false, "render selector thumbnails instead of full pages")
	pflag.Parse()

	templates := model.Templates()
	if *only != "" {
		id, err := model.ParseTemplateID(*only)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(2)
		}
		templates = []model.TemplateID{id}
	}

	renderer, err := render.NewHTMLRenderer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load templates failed: %v\n", err)
		os.Exit(1)
	}

	doc := model.Demo()
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create output dir failed: %v\n", err)
		os.Exit(1)
	}

	for _, id := range templates {
		path, err := writePage(renderer, *outDir, doc, id, *thumbnail)
		if err != nil {
			fmt.Fprintf(os.Stderr, "render %s failed: %v\n", id, err)
			os.Exit(1)
		}
		if err := validatePage(path, doc.PersonalInfo.FullName); err != nil {
			fmt.Fprintf(os.Stderr, "render validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("OK: wrote %s\n", path)
	}

	if err := writeLegacy(renderer, *outDir, doc); err != nil {
		fmt.Fprintf(os.Stderr, "write legacy page failed: %v\n", err)
		os.Exit(1)
	}
}

func writePage(renderer *render.HTMLRenderer, dir string, doc model.Document, id model.TemplateID, thumbnail bool) (string, error) {
	var opts []render.Option
	name := string(id) + ".html"
	if thumbnail {
		opts = append(opts, render.WithThumbnail())
		name = string(id) + "_thumbnail.html"
	}
	layout, err := render.Render(doc, id, opts...)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := renderer.WritePage(f, layout); err != nil {
		return "", err
	}
	return path, nil
}

// writeLegacy writes the demo document in its stored snapshot form next to
// the display page rendered from it.
func writeLegacy(renderer *render.HTMLRenderer, dir string, doc model.Document) error {
	snap := legacy.FromDocument(doc)
	payload, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "demo_snapshot.json"), payload, 0o644); err != nil {
		return err
	}

	page, err := renderer.LegacyPage(legacy.NewDisplay(snap))
	if err != nil {
		return err
	}
	path := filepath.Join(dir, "display.html")
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		return err
	}
	fmt.Printf("OK: wrote %s\n", path)
	return nil
}

func validatePage(path, name string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	page := string(data)
	if !strings.Contains(page, "<!DOCTYPE html>") {
		return fmt.Errorf("%s: missing doctype", path)
	}
	if name != "" && !strings.Contains(page, name) {
		return fmt.Errorf("%s: missing name %q", path, name)
	}
	return nil
}
