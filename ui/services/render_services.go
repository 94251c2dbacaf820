package services

import (
	"html/template"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

type RenderService struct{}

func NewRenderService() *RenderService {
	return &RenderService{}
}

// RenderMarkdown converts the dashboard's markdown text blocks to HTML.
// Raw HTML in the source is skipped.
func (s *RenderService) RenderMarkdown(md string) template.HTML {
	if md == "" {
		return ""
	}
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.SkipHTML | html.HrefTargetBlank,
	})
	out := markdown.ToHTML([]byte(md), p, renderer)
	return template.HTML(out) //nolint:gosec // SkipHTML drops raw HTML from the source
}
