package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/lanestrike/components"
	"github.com/automoto/lanestrike/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ShopUI holds the ebitenui interface shown between levels
type ShopUI struct {
	UI *ebitenui.UI

	// OnChoose is called when an entry is clicked
	OnChoose func(option components.ShopOption)

	// Widget references for updates
	titleLabel    *widget.Label
	goldLabel     *widget.Label
	statsLabel    *widget.Label
	statusLabel   *widget.Label
	optionButtons []*widget.Button
	upgrades      []systems.Upgrade

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewShopUI creates the shop screen. Entries come from systems.Upgrades.
func NewShopUI(onChoose func(option components.ShopOption)) *ShopUI {
	sui := &ShopUI{
		OnChoose: onChoose,
		upgrades: systems.Upgrades(),
	}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *ShopUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   32,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
	sui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
}

func (sui *ShopUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{15, 25, 50, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	sui.titleLabel = widget.NewLabel(
		widget.LabelOpts.Text("LEVEL CLEARED", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(sui.titleLabel)

	sui.goldLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 215, 0, 255},
		}),
	)
	contentContainer.AddChild(sui.goldLabel)

	sui.statsLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	contentContainer.AddChild(sui.statsLabel)

	for _, u := range sui.upgrades {
		contentContainer.AddChild(sui.buildOptionButton(u))
	}

	sui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 100, 100, 255},
		}),
	)
	contentContainer.AddChild(sui.statusLabel)

	hint := widget.NewLabel(
		widget.LabelOpts.Text("Up/Down: Choose   Enter: Buy", &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{150, 150, 150, 255},
		}),
	)
	contentContainer.AddChild(hint)

	rootContainer.AddChild(contentContainer)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	// Note: Don't call Refresh() here - widgets aren't validated yet
}

func (sui *ShopUI) buildOptionButton(u systems.Upgrade) *widget.Button {
	option := u.Option
	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(320, 36)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(optionText(u, false), &sui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Disabled: color.RGBA{120, 120, 120, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnChoose != nil {
				sui.OnChoose(option)
			}
		}),
	)
	sui.optionButtons = append(sui.optionButtons, button)
	return button
}

func (sui *ShopUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// Refresh updates every label from the latest snapshot
func (sui *ShopUI) Refresh(s systems.Snapshot) {
	if sui.titleLabel != nil {
		sui.titleLabel.Label = fmt.Sprintf("LEVEL %d CLEARED", s.Level)
	}
	if sui.goldLabel != nil {
		sui.goldLabel.Label = fmt.Sprintf("Gold: %d", s.Gold)
	}
	if sui.statsLabel != nil {
		sui.statsLabel.Label = fmt.Sprintf("Health %d/%d   Damage %d   Speed %.0f",
			s.Player.Health, s.Player.MaxHealth, s.Player.BulletDamage, s.Player.MoveSpeed)
	}

	for i, button := range sui.optionButtons {
		u := sui.upgrades[i]
		if textWidget := button.Text(); textWidget != nil {
			textWidget.Label = optionText(u, u.Option == s.ShopSelection)
		}
		// Entries the player cannot afford stay visible but greyed out
		button.GetWidget().Disabled = u.Cost > s.Gold
	}

	if sui.statusLabel != nil {
		if s.ShopRejected {
			sui.statusLabel.Label = "Not enough gold"
		} else {
			sui.statusLabel.Label = ""
		}
	}
}

func optionText(u systems.Upgrade, selected bool) string {
	marker := "  "
	if selected {
		marker = "> "
	}
	if u.Cost == 0 {
		return marker + u.Label
	}
	return fmt.Sprintf("%s%s  (%d gold)", marker, u.Label, u.Cost)
}

// Update runs ebitenui and then syncs the widgets with s
func (sui *ShopUI) Update(s systems.Snapshot) {
	sui.UI.Update()
	sui.Refresh(s)
}
