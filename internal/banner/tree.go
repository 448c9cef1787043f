package banner

import "github.com/ngmaloney/alert-banner/internal/models"

// Kind names the role of a node in the visual tree
type Kind string

const (
	KindContainer     Kind = "container"
	KindIconRegion    Kind = "icon-region"
	KindIcon          Kind = "icon"
	KindContentRegion Kind = "content-region"
	KindTitle         Kind = "title"
	KindDescription   Kind = "description"
	KindActionsRegion Kind = "actions-region"
	KindActionButton  Kind = "action-button"
	KindCloseButton   Kind = "close-button"
)

// Control identifies an activatable node
type Control string

const (
	ControlNone   Control = ""
	ControlAction Control = "action"
	ControlClose  Control = "close"
)

// Direction is the primary axis of a box
type Direction string

const (
	Row    Direction = "row"
	Column Direction = "column"
)

// Layout describes box geometry in logical pixels
type Layout struct {
	Direction    Direction      `yaml:"direction,omitempty"`
	Padding      models.Spacing `yaml:"padding"`
	Margin       models.Spacing `yaml:"margin,omitempty"`
	Gap          int            `yaml:"gap,omitempty"`
	Grow         bool           `yaml:"grow,omitempty"`
	FullWidth    bool           `yaml:"full_width,omitempty"`
	JustifyEnd   bool           `yaml:"justify_end,omitempty"`
	MinHeight    int            `yaml:"min_height,omitempty"`
	MaxWidth     int            `yaml:"max_width,omitempty"`
	BorderRadius int            `yaml:"border_radius,omitempty"`
}

// Typography describes text metrics. Zero fields inherit from the parent.
type Typography struct {
	Family        string `yaml:"family,omitempty"`
	Size          int    `yaml:"size,omitempty"`
	Weight        int    `yaml:"weight,omitempty"`
	LineHeight    string `yaml:"line_height,omitempty"`
	LetterSpacing string `yaml:"letter_spacing,omitempty"`
	Uppercase     bool   `yaml:"uppercase,omitempty"`
}

// Node is one element of the visual tree handed to a renderer.
// A tree is plain data: two trees built from equal props are deeply equal.
type Node struct {
	Kind       Kind        `yaml:"kind"`
	Text       string      `yaml:"text,omitempty"`
	Icon       models.Icon `yaml:"icon,omitempty"`
	Size       int         `yaml:"size,omitempty"`
	Color      string      `yaml:"color,omitempty"`
	Background string      `yaml:"background,omitempty"`
	Border     Border      `yaml:"border,omitempty"`
	Layout     Layout      `yaml:"layout,omitempty"`
	Type       Typography  `yaml:"type,omitempty"`
	Control    Control     `yaml:"control,omitempty"`
	Children   []Node      `yaml:"children,omitempty"`
}

// Walk visits n and its descendants depth first, stopping early when fn
// returns false
func (n Node) Walk(fn func(Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first node of the given kind
func (n Node) Find(kind Kind) (Node, bool) {
	var found Node
	var ok bool
	n.Walk(func(c Node) bool {
		if c.Kind == kind {
			found, ok = c, true
			return false
		}
		return true
	})
	return found, ok
}

// Has reports whether a node of the given kind exists in the tree
func (n Node) Has(kind Kind) bool {
	_, ok := n.Find(kind)
	return ok
}

// Child returns the direct child of the given kind
func (n Node) Child(kind Kind) (Node, bool) {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c, true
		}
	}
	return Node{}, false
}

// Clone returns a deep copy
func (n Node) Clone() Node {
	if n.Children == nil {
		return n
	}
	children := make([]Node, len(n.Children))
	for i, c := range n.Children {
		children[i] = c.Clone()
	}
	n.Children = children
	return n
}
