package output

import (
	"bytes"
	"fmt"
	"html"

	"github.com/rpgo/compound-interest/internal/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdownToHTML = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTMLFormatter produces a standalone HTML page from the markdown report.
type HTMLFormatter struct {
	Monthly bool
}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	md, err := renderMarkdown(results, h.Monthly)
	if err != nil {
		return nil, err
	}
	var body bytes.Buffer
	if err := markdownToHTML.Convert(md, &body); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n", html.EscapeString("Compound Interest Projection"))
	buf.WriteString("<style>body{font-family:sans-serif;max-width:60rem;margin:auto}table{border-collapse:collapse}td,th{padding:.25rem .75rem;border-bottom:1px solid #ddd}</style>\n")
	buf.WriteString("</head>\n<body>\n")
	buf.Write(body.Bytes())
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes(), nil
}
