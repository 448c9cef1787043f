// Package banner composes the alert banner: it resolves the severity and
// variant into colors and an icon, and turns banner props into a visual
// tree that renderers draw. A Banner is immutable once built and forwards
// exactly two interactions, action and close, to the caller's callbacks.
package banner

import (
	"github.com/ngmaloney/alert-banner/internal/models"
)

// Option adjusts the props or render context of a banner under construction
type Option func(*settings)

type settings struct {
	props    models.Props
	viewport int
}

// WithSeverity sets the severity
func WithSeverity(s models.Severity) Option {
	return func(c *settings) { c.props.Severity = s }
}

// WithVariant sets the variant
func WithVariant(v models.Variant) Option {
	return func(c *settings) { c.props.Variant = v }
}

// WithTitle sets the title text
func WithTitle(title string) Option {
	return func(c *settings) { c.props.Title = title }
}

// WithDescription sets the description text
func WithDescription(description string) Option {
	return func(c *settings) { c.props.Description = description }
}

// ShowTitle gates the title block
func ShowTitle(show bool) Option {
	return func(c *settings) { c.props.ShowTitle = show }
}

// ShowDescription gates the description block
func ShowDescription(show bool) Option {
	return func(c *settings) { c.props.ShowDescription = show }
}

// WithOnClose adds the close control
func WithOnClose(fn func()) Option {
	return func(c *settings) { c.props.OnClose = fn }
}

// WithAction adds the action control
func WithAction(label string, onClick func()) Option {
	return func(c *settings) {
		c.props.Action = &models.Action{Label: label, OnClick: onClick}
	}
}

// WithStyle sets the caller style patch
func WithStyle(p models.StylePatch) Option {
	return func(c *settings) { c.props.Style = p }
}

// WithViewport sets the viewport width in logical pixels used to pick the
// layout. Zero, the default, means unknown and keeps the wide layout.
func WithViewport(px int) Option {
	return func(c *settings) { c.viewport = px }
}

// Banner is one rendered alert banner
type Banner struct {
	props    models.Props
	style    StyleEntry
	icon     models.Icon
	viewport int
	root     Node
}

// New builds a banner from the default props adjusted by opts
func New(opts ...Option) *Banner {
	return FromProps(models.DefaultProps(), opts...)
}

// FromProps builds a banner from complete props. Options apply on top.
func FromProps(p models.Props, opts ...Option) *Banner {
	c := settings{props: p}
	for _, opt := range opts {
		opt(&c)
	}

	props := c.props
	props.Severity = props.Severity.Normalize()
	props.Variant = props.Variant.Normalize()
	if props.Action != nil {
		action := *props.Action
		props.Action = &action
	}

	b := &Banner{
		props:    props,
		style:    Resolve(props.Severity, props.Variant),
		icon:     IconFor(props.Severity),
		viewport: c.viewport,
	}
	b.root = compose(props, b.style, b.icon, MetricsFor(c.viewport))
	return b
}

// presence records, once, which optional parts a banner renders
type presence struct {
	title       bool
	description bool
	action      bool
	close       bool
}

func presenceOf(p models.Props) presence {
	return presence{
		title:       p.ShowTitle && p.Title != "",
		description: p.ShowDescription && p.Description != "",
		action:      p.Action != nil,
		close:       p.OnClose != nil,
	}
}

func (p presence) actions() bool {
	return p.action || p.close
}

func compose(p models.Props, style StyleEntry, icon models.Icon, m Metrics) Node {
	has := presenceOf(p)

	root := Node{
		Kind:       KindContainer,
		Color:      style.Text,
		Background: style.Background,
		Border:     style.Border,
		Layout:     m.Container.patched(p.Style),
		Type:       Typography{Family: FontFamily},
	}

	root.Children = append(root.Children, Node{
		Kind:   KindIconRegion,
		Layout: m.Icon,
		Children: []Node{{
			Kind:  KindIcon,
			Icon:  icon,
			Size:  IconSize,
			Color: style.Icon,
		}},
	})

	content := Node{Kind: KindContentRegion, Layout: m.Content}
	if has.title {
		content.Children = append(content.Children, Node{
			Kind:  KindTitle,
			Text:  p.Title,
			Color: style.Text,
			Type:  titleType,
		})
	}
	if has.description {
		content.Children = append(content.Children, Node{
			Kind:  KindDescription,
			Text:  p.Description,
			Color: style.Text,
			Type:  descriptionType,
		})
	}
	root.Children = append(root.Children, content)

	if !has.actions() {
		return root
	}

	actions := Node{Kind: KindActionsRegion, Layout: m.Actions}
	if has.action {
		actions.Children = append(actions.Children, Node{
			Kind:    KindActionButton,
			Text:    p.Action.Label,
			Color:   style.Text,
			Layout:  m.Action,
			Type:    actionType,
			Control: ControlAction,
		})
	}
	if has.close {
		actions.Children = append(actions.Children, Node{
			Kind:    KindCloseButton,
			Color:   style.Text,
			Layout:  m.Close,
			Control: ControlClose,
			Children: []Node{{
				Kind:  KindIcon,
				Icon:  models.IconClose,
				Size:  CloseIconSize,
				Color: style.Text,
			}},
		})
	}
	root.Children = append(root.Children, actions)

	return root
}

// Tree returns a copy of the visual tree
func (b *Banner) Tree() Node {
	return b.root.Clone()
}

// Style returns the resolved colors
func (b *Banner) Style() StyleEntry {
	return b.style
}

// Icon returns the resolved severity icon
func (b *Banner) Icon() models.Icon {
	return b.icon
}

// Severity returns the normalized severity
func (b *Banner) Severity() models.Severity {
	return b.props.Severity
}

// Variant returns the normalized variant
func (b *Banner) Variant() models.Variant {
	return b.props.Variant
}

// Patch returns the caller's style overrides
func (b *Banner) Patch() models.StylePatch {
	return b.props.Style
}

// Viewport returns the viewport width the layout was chosen for
func (b *Banner) Viewport() int {
	return b.viewport
}

// Narrow reports whether the banner uses the stacked layout
func (b *Banner) Narrow() bool {
	return Narrow(b.viewport)
}

// Wide reports whether the banner was built for a known viewport above the
// breakpoint. An unknown viewport is neither narrow nor wide.
func (b *Banner) Wide() bool {
	return b.viewport > Breakpoint
}

// Controls lists the rendered controls in tree order
func (b *Banner) Controls() []Control {
	var controls []Control
	b.root.Walk(func(n Node) bool {
		if n.Control != ControlNone {
			controls = append(controls, n.Control)
		}
		return true
	})
	return controls
}

// Activate forwards a user activation of control c to the matching
// callback, synchronously and exactly once. It reports false and calls
// nothing when the banner does not render that control.
func (b *Banner) Activate(c Control) bool {
	switch c {
	case ControlAction:
		if b.props.Action == nil {
			return false
		}
		if b.props.Action.OnClick != nil {
			b.props.Action.OnClick()
		}
		return true
	case ControlClose:
		if b.props.OnClose == nil {
			return false
		}
		b.props.OnClose()
		return true
	}
	return false
}
