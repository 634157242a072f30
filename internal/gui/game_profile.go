package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ramonehamilton/replay-companion/internal/profile"
)

var (
	highlightColor = color.NRGBA{R: 0xFB, G: 0xBD, B: 0x08, A: 0xFF} // yellow
	emptyColor     = color.NRGBA{R: 0x21, G: 0xBA, B: 0x45, A: 0xFF} // green
)

const characterImageSize = 64

// Navigator is the navigation handle passed to the page header.
type Navigator interface {
	Back()
}

// GameProfileView renders a profile.Profile.
type GameProfileView struct {
	profile *profile.Profile
	nav     Navigator
	sticky  *profile.StickyState

	scroll       *container.Scroll
	inlineHeader fyne.CanvasObject
	pinnedHeader fyne.CanvasObject
	statsDivider *widget.Separator
}

// NewGameProfileView creates a view for p. nav may be nil.
func NewGameProfileView(p *profile.Profile, nav Navigator) *GameProfileView {
	v := &GameProfileView{profile: p, nav: nav}
	v.sticky = profile.NewStickyState(v.onStickyChange)
	return v
}

// Sticky returns the sticky-header state of the view.
func (v *GameProfileView) Sticky() *profile.StickyState {
	return v.sticky
}

// CreateView builds the widget tree.
func (v *GameProfileView) CreateView() fyne.CanvasObject {
	header := v.pageHeader()

	if v.profile.Empty {
		return container.NewBorder(header, nil, nil, nil, v.emptyView())
	}

	return container.NewBorder(header, nil, nil, nil, v.statsView())
}

func (v *GameProfileView) pageHeader() fyne.CanvasObject {
	title := widget.NewLabelWithStyle(v.profile.Header.Text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	items := []fyne.CanvasObject{}
	if v.nav != nil {
		items = append(items, widget.NewButtonWithIcon("", theme.NavigateBackIcon(), v.nav.Back))
	}
	items = append(items, widget.NewIcon(theme.MediaVideoIcon()), title)

	return container.NewVBox(container.NewHBox(items...), widget.NewSeparator())
}

func (v *GameProfileView) emptyView() fyne.CanvasObject {
	icon := widget.NewIcon(theme.InfoIcon())
	message := canvas.NewText(v.profile.EmptyMessage, emptyColor)
	message.TextSize = theme.TextHeadingSize()
	message.TextStyle = fyne.TextStyle{Bold: true}
	message.Alignment = fyne.TextAlignCenter

	return container.NewCenter(container.NewVBox(icon, message))
}

func (v *GameProfileView) statsView() fyne.CanvasObject {
	v.inlineHeader = v.statsHeader()
	v.pinnedHeader = container.NewStack(
		canvas.NewRectangle(theme.Color(theme.ColorNameBackground)),
		container.NewVBox(v.statsHeader(), widget.NewSeparator()),
	)
	v.pinnedHeader.Hide()

	v.statsDivider = widget.NewSeparator()
	v.statsDivider.Hide()

	sections := container.NewVBox()
	for _, section := range v.profile.Sections {
		sections.Add(v.sectionView(section))
	}

	v.scroll = container.NewVScroll(container.NewVBox(v.inlineHeader, v.statsDivider, sections))
	v.scroll.OnScrolled = func(offset fyne.Position) {
		v.sticky.Update(offset.Y, v.inlineHeader.MinSize().Height)
	}

	return container.NewStack(v.scroll, container.NewVBox(v.pinnedHeader))
}

func (v *GameProfileView) onStickyChange(stuck bool) {
	if v.pinnedHeader == nil {
		return
	}
	if stuck {
		v.pinnedHeader.Show()
		v.statsDivider.Show()
	} else {
		v.pinnedHeader.Hide()
		v.statsDivider.Hide()
	}
}

func (v *GameProfileView) statsHeader() fyne.CanvasObject {
	vs := widget.NewLabelWithStyle("vs", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	matchup := container.NewHBox(
		layout.NewSpacer(),
		playerView(v.profile.Players[0]),
		container.NewCenter(vs),
		playerView(v.profile.Players[1]),
		layout.NewSpacer(),
	)

	details := container.NewVBox()
	for _, d := range v.profile.Details {
		label := widget.NewLabelWithStyle(d.Label, fyne.TextAlignTrailing, fyne.TextStyle{Bold: true})
		content := widget.NewLabel(d.Content)
		details.Add(container.NewHBox(layout.NewSpacer(), label, content, layout.NewSpacer()))
	}

	return container.NewVBox(matchup, details)
}

func playerView(p profile.PlayerDisplay) fyne.CanvasObject {
	name := widget.NewLabelWithStyle(p.Label, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	var image fyne.CanvasObject
	if p.Image != "" {
		img := canvas.NewImageFromFile(p.Image)
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(characterImageSize, characterImageSize))
		image = img
	} else {
		placeholder := widget.NewIcon(theme.AccountIcon())
		image = container.NewGridWrap(fyne.NewSize(characterImageSize, characterImageSize), placeholder)
	}

	return container.NewVBox(name, container.NewCenter(image))
}

func (v *GameProfileView) sectionView(section profile.Section) fyne.CanvasObject {
	title := widget.NewLabelWithStyle(section.Title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	rows := container.NewVBox()
	for _, stat := range section.Stats {
		rows.Add(statRow(stat))
	}
	return container.NewVBox(title, rows)
}

func statRow(stat profile.StatRow) fyne.CanvasObject {
	return container.NewGridWithColumns(2,
		statistic(stat.Display1, stat.Label, stat.Highlight == profile.Side1),
		statistic(stat.Display2, stat.Label, stat.Highlight == profile.Side2),
	)
}

func statistic(value, label string, highlighted bool) fyne.CanvasObject {
	c := theme.Color(theme.ColorNameForeground)
	if highlighted {
		c = highlightColor
	}

	valueText := canvas.NewText(value, c)
	valueText.TextSize = theme.TextSubHeadingSize()
	valueText.TextStyle = fyne.TextStyle{Bold: true}
	valueText.Alignment = fyne.TextAlignCenter

	labelText := widget.NewLabelWithStyle(label, fyne.TextAlignCenter, fyne.TextStyle{})
	return container.NewVBox(valueText, labelText)
}
