package web

import (
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/ngmaloney/alert-banner/internal/banner"
)

// Item is one banner placed on a story page
type Item struct {
	Section  string
	Banner   *banner.Banner
	Hooks    Hooks
	MaxWidth int // px of the surrounding box, 0 when unconstrained
}

func storyURL(id string) templ.SafeURL {
	return templ.SafeURL("/stories/" + url.PathEscape(id))
}

// opensSection reports whether items[i] starts a new section heading
func opensSection(items []Item, i int) bool {
	section := items[i].Section
	if section == "" {
		return false
	}
	for j := i - 1; j >= 0; j-- {
		if items[j].Section != "" {
			return items[j].Section != section
		}
	}
	return true
}

func entryStyle(maxWidth int) templ.SafeCSS {
	return templ.SafeCSS("max-width:" + strconv.Itoa(maxWidth) + "px")
}
