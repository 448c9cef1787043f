package banner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngmaloney/alert-banner/internal/models"
)

func kinds(nodes []Node) []Kind {
	out := make([]Kind, len(nodes))
	for i, n := range nodes {
		out[i] = n.Kind
	}
	return out
}

func TestNew_Defaults(t *testing.T) {
	b := New()

	assert.Equal(t, models.SeverityInfo, b.Severity())
	assert.Equal(t, models.VariantStandard, b.Variant())
	assert.Equal(t, "#E5F6FD", b.Style().Background)
	assert.Equal(t, "#014361", b.Style().Text)
	assert.Equal(t, models.IconInfoOutlined, b.Icon())

	tree := b.Tree()
	assert.Equal(t, KindContainer, tree.Kind)
	assert.Equal(t, "#E5F6FD", tree.Background)
	assert.Equal(t, "#014361", tree.Color)
	assert.Equal(t, []Kind{KindIconRegion, KindContentRegion}, kinds(tree.Children))
}

func TestFromProps_ZeroSeverityAndVariant(t *testing.T) {
	b := FromProps(models.Props{Title: "t", ShowTitle: true})

	assert.Equal(t, models.SeverityInfo, b.Severity())
	assert.Equal(t, models.VariantStandard, b.Variant())
	assert.Equal(t, Resolve(models.SeverityInfo, models.VariantStandard), b.Style())
}

func TestTree_RegionOrder(t *testing.T) {
	b := New(
		WithTitle("Connection Issue"),
		WithDescription("Unable to connect to the server."),
		WithAction("RETRY", func() {}),
		WithOnClose(func() {}),
	)
	tree := b.Tree()

	require.Equal(t, []Kind{KindIconRegion, KindContentRegion, KindActionsRegion}, kinds(tree.Children))

	content, _ := tree.Child(KindContentRegion)
	assert.Equal(t, []Kind{KindTitle, KindDescription}, kinds(content.Children))

	actions, _ := tree.Child(KindActionsRegion)
	assert.Equal(t, []Kind{KindActionButton, KindCloseButton}, kinds(actions.Children))
	assert.Equal(t, []Control{ControlAction, ControlClose}, b.Controls())
}

func TestTree_Icon(t *testing.T) {
	b := New(WithSeverity(models.SeverityError), WithVariant(models.VariantOutlined))
	tree := b.Tree()

	region, ok := tree.Child(KindIconRegion)
	require.True(t, ok)
	require.Len(t, region.Children, 1)

	icon := region.Children[0]
	assert.Equal(t, models.IconErrorOutline, icon.Icon)
	assert.Equal(t, IconSize, icon.Size)
	assert.Equal(t, "#D32F2F", icon.Color)
	assert.Equal(t, Border{Width: 1, Color: "#D32F2F"}, tree.Border)
}

func TestTree_TitleAndDescriptionGates(t *testing.T) {
	tests := []struct {
		name            string
		title           string
		description     string
		showTitle       bool
		showDescription bool
		wantTitle       bool
		wantDescription bool
	}{
		{"both shown", "T", "D", true, true, true, true},
		{"title hidden", "T", "D", false, true, false, true},
		{"description hidden", "T", "D", true, false, true, false},
		{"both hidden", "T", "D", false, false, false, false},
		{"title empty", "", "D", true, true, false, true},
		{"description empty", "T", "", true, true, true, false},
		{"nothing given", "", "", true, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := New(
				WithTitle(tt.title),
				WithDescription(tt.description),
				ShowTitle(tt.showTitle),
				ShowDescription(tt.showDescription),
			).Tree()

			assert.Equal(t, tt.wantTitle, tree.Has(KindTitle))
			assert.Equal(t, tt.wantDescription, tree.Has(KindDescription))
			assert.True(t, tree.Has(KindContentRegion), "content region is always present")
			assert.True(t, tree.Has(KindIcon), "icon is always present")
		})
	}
}

func TestTree_ActionsRegionPresence(t *testing.T) {
	noop := func() {}
	tests := []struct {
		name   string
		opts   []Option
		want   bool
		wantCt []Control
	}{
		{"neither", nil, false, nil},
		{"close only", []Option{WithOnClose(noop)}, true, []Control{ControlClose}},
		{"action only", []Option{WithAction("UNDO", noop)}, true, []Control{ControlAction}},
		{"both", []Option{WithAction("UNDO", noop), WithOnClose(noop)}, true, []Control{ControlAction, ControlClose}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.opts...)
			assert.Equal(t, tt.want, b.Tree().Has(KindActionsRegion))
			assert.Equal(t, tt.wantCt, b.Controls())
		})
	}
}

func TestActivate_ActionCallsOnlyOnClick(t *testing.T) {
	var clicks, closes int
	b := New(
		WithAction("UNDO", func() { clicks++ }),
		WithOnClose(func() { closes++ }),
	)

	assert.True(t, b.Activate(ControlAction))
	assert.Equal(t, 1, clicks)
	assert.Equal(t, 0, closes)

	assert.True(t, b.Activate(ControlAction))
	assert.Equal(t, 2, clicks)
	assert.Equal(t, 0, closes)
}

func TestActivate_CloseCallsOnlyOnClose(t *testing.T) {
	var clicks, closes int
	b := New(
		WithAction("UNDO", func() { clicks++ }),
		WithOnClose(func() { closes++ }),
	)

	assert.True(t, b.Activate(ControlClose))
	assert.Equal(t, 0, clicks)
	assert.Equal(t, 1, closes)
}

func TestActivate_MissingControl(t *testing.T) {
	b := New(WithTitle("no controls"))

	assert.False(t, b.Activate(ControlAction))
	assert.False(t, b.Activate(ControlClose))
	assert.False(t, b.Activate(ControlNone))
	assert.False(t, b.Activate(Control("bogus")))
}

func TestActivate_DoesNotChangeTree(t *testing.T) {
	b := New(WithTitle("T"), WithOnClose(func() {}))
	before := b.Tree()

	b.Activate(ControlClose)

	assert.Equal(t, before, b.Tree())
}

func TestActivate_ActionWithoutHandler(t *testing.T) {
	b := FromProps(models.Props{Action: &models.Action{Label: "OK"}})
	assert.True(t, b.Activate(ControlAction))
}

func TestFromProps_CopiesAction(t *testing.T) {
	var called string
	action := &models.Action{Label: "UNDO", OnClick: func() { called = "first" }}
	b := FromProps(models.Props{Action: action})

	action.Label = "CHANGED"
	action.OnClick = func() { called = "second" }

	btn, ok := b.Tree().Find(KindActionButton)
	require.True(t, ok)
	assert.Equal(t, "UNDO", btn.Text)

	b.Activate(ControlAction)
	assert.Equal(t, "first", called)
}

func TestTree_ReturnsCopy(t *testing.T) {
	b := New(WithTitle("T"))
	tree := b.Tree()
	tree.Children[0].Kind = KindTitle
	tree.Children[1].Children[0].Text = "mutated"

	again := b.Tree()
	assert.Equal(t, KindIconRegion, again.Children[0].Kind)
	assert.Equal(t, "T", again.Children[1].Children[0].Text)
}

func TestTree_Responsive(t *testing.T) {
	tests := []struct {
		viewport int
		want     Direction
		wide     bool
	}{
		{0, Row, false},
		{1200, Row, true},
		{601, Row, true},
		{600, Column, false},
		{320, Column, false},
	}

	for _, tt := range tests {
		b := New(WithViewport(tt.viewport), WithOnClose(func() {}))
		tree := b.Tree()
		assert.Equal(t, tt.want, tree.Layout.Direction, "viewport %d", tt.viewport)
		assert.Equal(t, tt.want == Column, b.Narrow())
		assert.Equal(t, tt.wide, b.Wide())

		actions, _ := tree.Child(KindActionsRegion)
		assert.Equal(t, tt.want == Column, actions.Layout.JustifyEnd)
	}
}

func TestTree_ResponsivePaddings(t *testing.T) {
	wide := New(WithViewport(1024)).Tree()
	narrow := New(WithViewport(375)).Tree()

	assert.Equal(t, models.Pad(6, 16), wide.Layout.Padding)
	assert.Equal(t, models.Pad(8, 12), narrow.Layout.Padding)
	assert.Equal(t, 8, narrow.Layout.Gap)

	wideIcon, _ := wide.Child(KindIconRegion)
	narrowIcon, _ := narrow.Child(KindIconRegion)
	assert.Equal(t, models.Pad(7, 12, 7, 0), wideIcon.Layout.Padding)
	assert.Equal(t, models.Pad(4, 8, 4, 0), narrowIcon.Layout.Padding)
}

func TestTree_StylePatchMergedLast(t *testing.T) {
	radius := 0
	padding := models.Pad(2)
	b := New(
		WithViewport(400),
		WithSeverity(models.SeverityWarning),
		WithStyle(models.StylePatch{MaxWidth: 400, BorderRadius: &radius, Padding: &padding}),
	)
	tree := b.Tree()

	assert.Equal(t, 400, tree.Layout.MaxWidth)
	assert.Equal(t, 0, tree.Layout.BorderRadius)
	assert.Equal(t, padding, tree.Layout.Padding)
	assert.Equal(t, Column, tree.Layout.Direction)
	assert.Equal(t, "#FFF4E5", tree.Background, "patch never touches colors")
}

func TestScenario_TitleOnlyFilledError(t *testing.T) {
	b := New(
		WithSeverity(models.SeverityError),
		WithVariant(models.VariantFilled),
		WithTitle("Critical Error Occurred"),
		ShowDescription(false),
	)
	tree := b.Tree()

	title, ok := tree.Find(KindTitle)
	require.True(t, ok)
	assert.Equal(t, "Critical Error Occurred", title.Text)
	assert.Equal(t, "#FFFFFF", title.Color)

	icon, ok := tree.Find(KindIcon)
	require.True(t, ok)
	assert.Equal(t, models.IconErrorOutline, icon.Icon)

	assert.False(t, tree.Has(KindDescription))
	assert.False(t, tree.Has(KindActionsRegion))
}

func TestScenario_SuccessUndo(t *testing.T) {
	calls := 0
	b := New(
		WithSeverity(models.SeveritySuccess),
		WithAction("UNDO", func() { calls++ }),
	)
	tree := b.Tree()

	require.True(t, tree.Has(KindActionsRegion))
	btn, ok := tree.Find(KindActionButton)
	require.True(t, ok)
	assert.Equal(t, "UNDO", btn.Text)
	assert.True(t, btn.Type.Uppercase)

	b.Activate(ControlAction)
	assert.Equal(t, 1, calls)
}

func TestTree_CloseButtonIcon(t *testing.T) {
	tree := New(WithSeverity(models.SeverityWarning), WithVariant(models.VariantFilled), WithOnClose(func() {})).Tree()

	btn, ok := tree.Find(KindCloseButton)
	require.True(t, ok)
	require.Len(t, btn.Children, 1)
	assert.Equal(t, models.IconClose, btn.Children[0].Icon)
	assert.Equal(t, CloseIconSize, btn.Children[0].Size)
	assert.Equal(t, "#FFFFFF", btn.Color)
}
