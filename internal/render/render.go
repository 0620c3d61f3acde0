// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns generated Markdown into a standalone HTML page for
// previewing tables in a browser. MathJax typesets the $...$ cells.
package render

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var ErrHTMLConversion = errors.New("HTML conversion failed")

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>lazytex</title>
<script>
window.MathJax = { tex: { inlineMath: [['$', '$']] } };
</script>
<script async src="https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-chtml.js"></script>
</head>
<body>
%s</body>
</html>
`

var md = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithRendererOptions(html.WithXHTML()),
)

// HTML renders markdown as the body of an HTML5 page.
func HTML(markdown string) (string, error) {
	var body bytes.Buffer
	if err := md.Convert([]byte(markdown), &body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return fmt.Sprintf(pageTemplate, body.String()), nil
}
