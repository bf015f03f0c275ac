// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package render turns a puzzle website page into plain terminal text.
//
// Only the page's <main> element is rendered. Hyperlinks are replaced by
// their text followed by a numbered reference, and the references are listed
// as absolute URLs after the text:
//
//	That's the right answer! You are one gold star closer. [Continue to Part Two][1]
//
//	[1]: https://adventofcode.com/2023/day/5#part2
package render

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	arverrors "github.com/arrivehq/arrive/internal/errors"
)

// Renderer resolves relative links against the website's origin.
type Renderer struct {
	base *url.URL
}

// New creates a Renderer for pages served from origin.
func New(origin string) (*Renderer, error) {
	base, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid website origin %q: %v", arverrors.ErrConfiguration, origin, err)
	}
	if !base.IsAbs() {
		return nil, fmt.Errorf("%w: website origin %q is not absolute", arverrors.ErrConfiguration, origin)
	}
	return &Renderer{base: base}, nil
}

// Parse renders the <main> region of page. It fails with ErrParse when the
// page has no <main> element; callers should then show the page unmodified.
func (r *Renderer) Parse(page string) (string, error) {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return "", fmt.Errorf("%w: %v", arverrors.ErrParse, err)
	}

	region := findElement(doc, atom.Main)
	if region == nil {
		return "", fmt.Errorf("%w: no <main> element in response", arverrors.ErrParse)
	}

	w := &textWriter{base: r.base}
	w.walk(region)
	return w.String(), nil
}

// findElement returns the first element of type a in document order.
func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

// blockElements start and end on their own line.
var blockElements = map[atom.Atom]bool{
	atom.Article: true, atom.Blockquote: true, atom.Div: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true,
	atom.Li: true, atom.Ol: true, atom.P: true, atom.Pre: true,
	atom.Section: true, atom.Ul: true, atom.Form: true,
}

type textWriter struct {
	base  *url.URL
	sb    strings.Builder
	links []string
	pre   int
}

func (w *textWriter) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.text(n.Data)
		return
	case html.ElementNode:
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			w.walk(c)
		}
		return
	}

	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Noscript:
		return
	case atom.Br:
		w.sb.WriteByte('\n')
		return
	}

	block := blockElements[n.DataAtom]
	if block {
		w.paragraph()
	}
	if n.DataAtom == atom.Li {
		w.sb.WriteString("- ")
	}
	if n.DataAtom == atom.Pre {
		w.pre++
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}

	if n.DataAtom == atom.Pre {
		w.pre--
	}
	if n.DataAtom == atom.A {
		if href := attr(n, "href"); href != "" {
			w.links = append(w.links, w.resolve(href))
			fmt.Fprintf(&w.sb, "[%d]", len(w.links))
		}
	}
	if block {
		w.paragraph()
	}
}

// text writes character data, collapsing whitespace outside <pre>.
func (w *textWriter) text(data string) {
	if w.pre > 0 {
		w.sb.WriteString(data)
		return
	}
	fields := strings.Fields(data)
	if len(fields) == 0 {
		if data != "" && !w.atLineStart() {
			w.sb.WriteByte(' ')
		}
		return
	}
	if startsWithSpace(data) && !w.atLineStart() {
		w.sb.WriteByte(' ')
	}
	w.sb.WriteString(strings.Join(fields, " "))
	if endsWithSpace(data) {
		w.sb.WriteByte(' ')
	}
}

func (w *textWriter) paragraph() {
	w.sb.WriteString("\n\n")
}

func (w *textWriter) atLineStart() bool {
	s := w.sb.String()
	return s == "" || strings.HasSuffix(s, "\n") || strings.HasSuffix(s, " ")
}

func (w *textWriter) resolve(href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return w.base.ResolveReference(ref).String()
}

// String returns the normalized text followed by the link footnotes.
func (w *textWriter) String() string {
	lines := strings.Split(w.sb.String(), "\n")
	out := make([]string, 0, len(lines))
	blank := true
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			if !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, line)
		blank = false
	}
	text := strings.TrimSpace(strings.Join(out, "\n"))

	if len(w.links) == 0 {
		return text + "\n"
	}

	var sb strings.Builder
	sb.WriteString(text)
	sb.WriteString("\n\n")
	for i, link := range w.links {
		fmt.Fprintf(&sb, "[%d]: %s\n", i+1, link)
	}
	return sb.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func startsWithSpace(s string) bool {
	return s != "" && strings.ContainsRune(" \t\n\r\f", rune(s[0]))
}

func endsWithSpace(s string) bool {
	return s != "" && strings.ContainsRune(" \t\n\r\f", rune(s[len(s)-1]))
}
