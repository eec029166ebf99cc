package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html"
)

// ErrNoElement is returned if markup does not contain any element to
// build a styled tree from.
var ErrNoElement = errors.New("no element in markup")

// FromHTML creates a styled tree mirroring the element nodes of an HTML
// tree. Text, comment and other non-element nodes are skipped. Style
// classes are taken from the 'class' attribute. If h is a document node,
// its first element child (usually 'html') becomes the root.
func FromHTML(h *html.Node) (*StyNode, error) {
	if h != nil && h.Type == html.DocumentNode {
		h = firstElement(h)
	}
	if h == nil || h.Type != html.ElementNode {
		return nil, ErrNoElement
	}
	root := build(h)
	tracer().Debugf("styled tree created for <%s>", h.Data)
	return root, nil
}

// Parse reads HTML markup and creates a styled tree from the first element
// of the body with FromHTML.
func Parse(r io.Reader) (*StyNode, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing markup: %w", err)
	}
	body := findElement(doc, "body")
	if body == nil {
		return nil, ErrNoElement
	}
	return FromHTML(firstElement(body))
}

func build(h *html.Node) *StyNode {
	sn := NewNodeForHTMLNode(h)
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			sn.AppendChild(build(c))
		}
	}
	return sn
}

func firstElement(h *html.Node) *html.Node {
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

func findElement(h *html.Node, name string) *html.Node {
	if h.Type == html.ElementNode && h.Data == name {
		return h
	}
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}
