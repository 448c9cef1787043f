// Package web renders alert banners as HTML and serves the story catalog
// over HTTP.
package web

//go:generate templ generate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/ngmaloney/alert-banner/internal/banner"
	"github.com/ngmaloney/alert-banner/internal/models"
)

// Hooks maps a control to the URL its form posts to. A nil Hooks renders
// plain buttons that submit nowhere.
type Hooks func(c banner.Control) string

// containerStyle inlines the resolved colors and the caller's overrides.
// Everything else comes from the stylesheet classes.
func containerStyle(root banner.Node, patch models.StylePatch) templ.SafeCSS {
	decls := []string{
		"background-color:" + root.Background,
		"color:" + root.Color,
	}
	if root.Border.Width > 0 {
		decls = append(decls, fmt.Sprintf("border:%dpx solid %s", root.Border.Width, root.Border.Color))
	} else {
		decls = append(decls, "border:none")
	}

	l := root.Layout
	if patch.MaxWidth > 0 {
		decls = append(decls, fmt.Sprintf("max-width:%dpx", l.MaxWidth))
	}
	if patch.MinHeight > 0 {
		decls = append(decls, fmt.Sprintf("min-height:%dpx", l.MinHeight))
	}
	if patch.Margin != nil {
		decls = append(decls, "margin:"+spacing(l.Margin))
	}
	if patch.Padding != nil {
		decls = append(decls, "padding:"+spacing(l.Padding))
	}
	if patch.BorderRadius != nil {
		decls = append(decls, fmt.Sprintf("border-radius:%dpx", l.BorderRadius))
	}
	return templ.SafeCSS(strings.Join(decls, ";"))
}

func textStyle(n banner.Node) templ.SafeCSS {
	decls := []string{"color:" + n.Color}
	t := n.Type
	if t.Family != "" {
		decls = append(decls, "font-family:"+t.Family)
	}
	if t.Size > 0 {
		decls = append(decls, fmt.Sprintf("font-size:%dpx", t.Size))
	}
	if t.Weight > 0 {
		decls = append(decls, "font-weight:"+strconv.Itoa(t.Weight))
	}
	if t.LineHeight != "" {
		decls = append(decls, "line-height:"+t.LineHeight)
	}
	if t.LetterSpacing != "" {
		decls = append(decls, "letter-spacing:"+t.LetterSpacing)
	}
	if t.Uppercase {
		decls = append(decls, "text-transform:uppercase")
	}
	return templ.SafeCSS(strings.Join(decls, ";"))
}

func iconStyle(n banner.Node) templ.SafeCSS {
	return templ.SafeCSS(fmt.Sprintf("color:%s;font-size:%dpx;line-height:1", n.Color, n.Size))
}

func closeStyle(n banner.Node) templ.SafeCSS {
	return templ.SafeCSS("color:" + n.Color)
}

// spacing formats a Spacing as a CSS four-value shorthand
func spacing(s models.Spacing) string {
	return fmt.Sprintf("%dpx %dpx %dpx %dpx", s.Top, s.Right, s.Bottom, s.Left)
}
