// Package stories holds the documentation catalog of the alert banner:
// every canonical arrangement of props, with the messages its callbacks
// report when a reader interacts with it.
package stories

import (
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/ngmaloney/alert-banner/internal/models"
)

// ErrUnknownStory is returned by Lookup for an id not in the catalog
var ErrUnknownStory = errors.New("unknown story")

// Notifier receives the message of a story callback
type Notifier func(message string)

// Entry is one banner placed in a story
type Entry struct {
	Section  string // heading of the group this entry belongs to, if any
	Props    models.Props
	MaxWidth int // logical px of the surrounding box, 0 for the story width
}

// Story is a named arrangement of banners
type Story struct {
	ID          string
	Name        string
	Description string
	Heading     string
	MaxWidth    int // logical px, 0 when unconstrained

	entries func(notify Notifier) []Entry
}

// Entries builds fresh props for every banner of the story. Callbacks report
// through notify; a nil notify discards the messages.
func (s Story) Entries(notify Notifier) []Entry {
	if notify == nil {
		notify = func(string) {}
	}
	return s.entries(notify)
}

// Width returns the box width, in logical px, for entry e
func (s Story) Width(e Entry) int {
	if e.MaxWidth > 0 {
		return e.MaxWidth
	}
	return s.MaxWidth
}

func report(notify Notifier, message string) func() {
	return func() { notify(message) }
}

func entry(severity models.Severity, variant models.Variant, title, description string) Entry {
	p := models.DefaultProps()
	p.Severity = severity
	p.Variant = variant
	p.Title = title
	p.Description = description
	return Entry{Props: p}
}

func (e Entry) closable(notify Notifier, message string) Entry {
	e.Props.OnClose = report(notify, message)
	return e
}

func (e Entry) withAction(notify Notifier, label, message string) Entry {
	e.Props.Action = &models.Action{Label: label, OnClick: report(notify, message)}
	return e
}

func (e Entry) titleOnly() Entry {
	e.Props.ShowDescription = false
	return e
}

func (e Entry) descriptionOnly() Entry {
	e.Props.ShowTitle = false
	return e
}

func (e Entry) within(px int) Entry {
	e.MaxWidth = px
	return e
}

// severityLevels is the display order of the per-variant stories
var severityLevels = []models.Severity{
	models.SeveritySuccess,
	models.SeverityInfo,
	models.SeverityWarning,
	models.SeverityError,
	models.SeverityNothing,
}

func allSeverities(variant models.Variant) func(Notifier) []Entry {
	return func(Notifier) []Entry {
		entries := make([]Entry, 0, len(severityLevels))
		for _, s := range severityLevels {
			entries = append(entries, entry(s, variant,
				s.Title()+" Alert",
				"This is a "+s.String()+" alert with "+variant.String()+" variant styling."))
		}
		return entries
	}
}

func variantMatrix(Notifier) []Entry {
	var entries []Entry
	for _, v := range models.Variants() {
		section := v.Title() + " Variant"
		for _, s := range models.Severities() {
			e := entry(s, v, s.Title(), s.Title()+" description")
			e.Section = section
			entries = append(entries, e)
		}
	}
	return entries
}

var catalog = []Story{
	{
		ID:          "default",
		Name:        "Default",
		Description: "AlertBanner with the default severity and variant.",
		entries: func(Notifier) []Entry {
			return []Entry{entry(models.SeverityInfo, models.VariantStandard,
				"Information", "This is an informational alert message.")}
		},
	},
	{
		ID:          "playground",
		Name:        "Playground",
		Description: "Interactive playground to test different combinations of props.",
		entries: func(Notifier) []Entry {
			return []Entry{entry(models.SeverityWarning, models.VariantStandard,
				"Warning Alert", "This is a warning message that you should pay attention to.")}
		},
	},
	{
		ID:          "all-severity-levels-standard",
		Name:        "All Severity Levels - Standard",
		Description: "All severity levels (success, info, warning, error) using the standard variant.",
		Heading:     "Standard Variant - All Severity Levels",
		MaxWidth:    600,
		entries:     allSeverities(models.VariantStandard),
	},
	{
		ID:          "all-severity-levels-outlined",
		Name:        "All Severity Levels - Outlined",
		Description: "All severity levels using the outlined variant with borders.",
		Heading:     "Outlined Variant - All Severity Levels",
		MaxWidth:    600,
		entries:     allSeverities(models.VariantOutlined),
	},
	{
		ID:          "all-severity-levels-filled",
		Name:        "All Severity Levels - Filled",
		Description: "All severity levels using the filled variant with solid backgrounds.",
		Heading:     "Filled Variant - All Severity Levels",
		MaxWidth:    600,
		entries:     allSeverities(models.VariantFilled),
	},
	{
		ID:          "complete-variant-matrix",
		Name:        "Complete Variant Matrix",
		Description: "Complete matrix showing all combinations of severity levels and variants.",
		Heading:     "Complete Alert Variant Matrix",
		MaxWidth:    800,
		entries:     variantMatrix,
	},
	{
		ID:          "with-close-button",
		Name:        "With Close Button",
		Description: "Alerts with close buttons that can be dismissed by users.",
		Heading:     "Alerts with Close Button",
		MaxWidth:    600,
		entries: func(n Notifier) []Entry {
			return []Entry{
				entry(models.SeverityWarning, models.VariantStandard, "Dismissible Warning",
					"This alert displays the default close icon.").
					closable(n, "Alert closed!"),
				entry(models.SeverityError, models.VariantOutlined, "Critical Error",
					"This error alert can be dismissed by clicking the close button.").
					closable(n, "Error alert closed!"),
				entry(models.SeveritySuccess, models.VariantFilled, "Success",
					"Operation completed successfully. Click to dismiss.").
					closable(n, "Success alert closed!"),
			}
		},
	},
	{
		ID:          "with-action-button",
		Name:        "With Action Button",
		Description: "Alerts with action buttons for user interactions.",
		Heading:     "Alerts with Action Button",
		MaxWidth:    600,
		entries: func(n Notifier) []Entry {
			return []Entry{
				entry(models.SeveritySuccess, models.VariantStandard, "Operation Complete",
					"This Alert uses a Button component for its action.").
					withAction(n, "UNDO", "Undo action clicked!"),
				entry(models.SeverityInfo, models.VariantOutlined, "Update Available",
					"A new version of the application is available.").
					withAction(n, "UPDATE", "Update action clicked!"),
				entry(models.SeverityWarning, models.VariantFilled, "Storage Almost Full",
					"Your storage is 90% full. Consider freeing up some space.").
					withAction(n, "MANAGE", "Manage storage clicked!"),
			}
		},
	},
	{
		ID:          "with-both-close-and-action",
		Name:        "With Both Close and Action",
		Description: "Alerts with both action and close buttons for maximum flexibility.",
		Heading:     "Alerts with Both Close and Action Buttons",
		MaxWidth:    600,
		entries: func(n Notifier) []Entry {
			return []Entry{
				entry(models.SeverityWarning, models.VariantStandard, "Connection Issue",
					"Unable to connect to the server. Check your internet connection.").
					withAction(n, "RETRY", "Retry clicked!").
					closable(n, "Alert dismissed!"),
				entry(models.SeverityError, models.VariantOutlined, "Payment Failed",
					"Your payment could not be processed. Please try again.").
					withAction(n, "RETRY PAYMENT", "Retry payment clicked!").
					closable(n, "Payment alert dismissed!"),
			}
		},
	},
	{
		ID:          "title-only",
		Name:        "Title Only",
		Description: "Alerts showing only the title without description text.",
		Heading:     "Title Only Alerts",
		MaxWidth:    600,
		entries: func(Notifier) []Entry {
			return []Entry{
				entry(models.SeverityError, models.VariantFilled, "Critical Error Occurred", "").titleOnly(),
				entry(models.SeverityWarning, models.VariantOutlined, "Warning Message", "").titleOnly(),
				entry(models.SeveritySuccess, models.VariantStandard, "Success", "").titleOnly(),
			}
		},
	},
	{
		ID:          "description-only",
		Name:        "Description Only",
		Description: "Alerts showing only the description without title text.",
		Heading:     "Description Only Alerts",
		MaxWidth:    600,
		entries: func(Notifier) []Entry {
			return []Entry{
				entry(models.SeverityInfo, models.VariantStandard, "",
					"This is a success Alert with warning colors.").descriptionOnly(),
				entry(models.SeverityWarning, models.VariantOutlined, "",
					"Important information that doesn't need a title.").descriptionOnly(),
				entry(models.SeveritySuccess, models.VariantFilled, "",
					"Operation completed successfully without any issues.").descriptionOnly(),
			}
		},
	},
	{
		ID:          "long-content",
		Name:        "Long Content",
		Description: "Alerts with longer content to test text wrapping and layout.",
		Heading:     "Alerts with Long Content",
		MaxWidth:    800,
		entries: func(n Notifier) []Entry {
			return []Entry{
				entry(models.SeverityError, models.VariantStandard,
					"Authentication Error - Unable to Process Request",
					"Your session has expired due to inactivity. This is a security measure to protect "+
						"your account. Please log in again to continue using the application. If you "+
						"continue to experience issues, please contact our support team for assistance.").
					closable(n, "Long error alert closed!"),
				entry(models.SeverityInfo, models.VariantOutlined,
					"System Maintenance Scheduled",
					"We will be performing scheduled maintenance on our servers this weekend from "+
						"Saturday 2:00 AM to Sunday 6:00 AM EST. During this time, some features may be "+
						"temporarily unavailable. We apologize for any inconvenience this may cause.").
					withAction(n, "LEARN MORE", "Learn more clicked!"),
			}
		},
	},
	{
		ID:          "responsive-design",
		Name:        "Responsive Design",
		Description: "Demonstrates how alerts adapt to different screen sizes and container widths.",
		Heading:     "Responsive Design - Try resizing the viewport",
		entries: func(n Notifier) []Entry {
			return []Entry{
				entry(models.SeverityWarning, models.VariantStandard, "Responsive Alert",
					"This alert adapts to different screen sizes. On mobile devices, the layout "+
						"changes to stack elements vertically for better readability.").
					withAction(n, "ACTION", "Responsive action clicked!").
					closable(n, "Responsive alert closed!").
					within(1200),
				entry(models.SeverityInfo, models.VariantOutlined, "Mobile View",
					"This shows how the alert looks in a narrower container, similar to mobile viewport.").
					closable(n, "Mobile alert closed!").
					within(400),
			}
		},
	},
}

// All returns the catalog in display order
func All() []Story {
	out := make([]Story, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the story with the given id
func Lookup(id string) (Story, error) {
	for _, s := range catalog {
		if s.ID == id {
			return s, nil
		}
	}
	return Story{}, errors.Wrapf(ErrUnknownStory, "lookup %q", id)
}

// PlaygroundArgs are the free-form controls of the playground story
type PlaygroundArgs struct {
	Severity        string
	Variant         string
	Title           string
	Description     string
	ShowTitle       string // "true"/"false"; empty keeps the default
	ShowDescription string
}

// Playground builds a one-banner story from string controls, starting from
// the playground defaults. Invalid enum names or booleans are rejected.
func Playground(args PlaygroundArgs) (Story, error) {
	base, err := Lookup("playground")
	if err != nil {
		return Story{}, err
	}
	p := base.Entries(nil)[0].Props

	if args.Severity != "" {
		if p.Severity, err = models.ParseSeverity(args.Severity); err != nil {
			return Story{}, err
		}
	}
	if args.Variant != "" {
		if p.Variant, err = models.ParseVariant(args.Variant); err != nil {
			return Story{}, err
		}
	}
	if args.Title != "" {
		p.Title = args.Title
	}
	if args.Description != "" {
		p.Description = args.Description
	}
	if p.ShowTitle, err = parseFlag(args.ShowTitle, p.ShowTitle); err != nil {
		return Story{}, errors.Wrap(err, "show title")
	}
	if p.ShowDescription, err = parseFlag(args.ShowDescription, p.ShowDescription); err != nil {
		return Story{}, errors.Wrap(err, "show description")
	}

	base.entries = func(Notifier) []Entry { return []Entry{{Props: p}} }
	return base, nil
}

func parseFlag(value string, fallback bool) (bool, error) {
	if value == "" {
		return fallback, nil
	}
	return strconv.ParseBool(value)
}
