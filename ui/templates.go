package ui

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"sort"

	"spacexdash/internal/errors"
	"spacexdash/ui/services"
)

//go:embed templates/*.html static/*
var embeddedFiles embed.FS

// indexPage is the data for templates/index.html.
type indexPage struct {
	Controls services.Controls
	Dataset  services.DatasetInfo
	Marks    []int
}

func parseTemplates() (*template.Template, error) {
	t, err := template.New("").ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}
	return t, nil
}

func staticFS() fs.FS {
	sub, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		// static/ is embedded at build time; a failure here is a build defect.
		panic(err)
	}
	return sub
}

func newIndexPage(svc *services.DataService) indexPage {
	controls := svc.Controls()
	marks := make([]int, 0, len(controls.Slider.Marks))
	for m := range controls.Slider.Marks {
		marks = append(marks, m)
	}
	sort.Ints(marks)
	return indexPage{Controls: controls, Dataset: svc.Info(), Marks: marks}
}

// renderIndex executes the page into a buffer so a template failure never
// leaves a half-written response.
func renderIndex(t *template.Template, svc *services.DataService) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "index.html", newIndexPage(svc)); err != nil {
		return nil, errors.Wrap(err, "failed to render index")
	}
	return buf.Bytes(), nil
}
