package demo

import (
	"context"
	"fmt"
	"strconv"

	"tableflip.dev/menukit/pkg/actions"
	"tableflip.dev/menukit/pkg/maps"
	"tableflip.dev/menukit/pkg/numeric"
	"tableflip.dev/menukit/pkg/prefs"
	"tableflip.dev/menukit/pkg/tui/menu"
)

// Preference names used by the sample menu.
const (
	PrefFontSize    = "font-size"
	PrefTemperature = "temperature"
)

var fontSize = prefs.BoundedOptions{Name: PrefFontSize, Min: 8, Max: 32, Default: 14}

// SampleRoot builds a menu that exercises every entry kind and common
// action. Numeric selections are written back to store.
func SampleRoot(env *actions.Env, store prefs.Store, clip int) *menu.Root {
	save := func(name string) func(float64) {
		return func(v float64) {
			if store == nil {
				return
			}
			if err := store.Set(name, strconv.FormatFloat(v, 'f', -1, 64)); err != nil {
				env.Log().Warn("saving preference failed", "name", name, "error", err)
			}
		}
	}

	size := prefs.BoundedNumber(store, fontSize)
	temperature := prefs.BoundedNumber(store, prefs.BoundedOptions{Name: PrefTemperature, Min: -20, Max: 40, Default: 21})

	recent := make([]menu.Entry, 0, 8)
	for i := 1; i <= 8; i++ {
		recent = append(recent, actions.CopyToClipboard(env, fmt.Sprintf("snippet #%d", i),
			actions.WithTitle(fmt.Sprintf("Snippet #%d", i)),
			actions.WithSubtitle("copy"),
		))
	}

	long := "Open the release notes for the upcoming version in your default web browser"

	return &menu.Root{
		Title:   "menukit",
		Icon:    menu.IconGear,
		Tooltip: "Sample menu",
		Children: []menu.Entry{
			&menu.Section{
				Title: "Actions",
				Children: []menu.Entry{
					actions.CopyToClipboard(env, "Hello from menukit",
						actions.WithShortcut(menu.Shortcut{Modifiers: []string{"cmd"}, Key: "c"})),
					actions.OpenInBrowser(env, "https://github.com/charmbracelet/bubbletea", func(url string) {
						env.Log().Info("opened", "url", url)
					}),
					actions.OpenMaps(env, maps.Query{
						Coordinates: &maps.Coordinates{Lat: 47.3769, Long: 8.5417},
						Type:        maps.Satellite,
					}, actions.WithSubtitle("Zürich")),
					actions.LaunchCommand(env, actions.LaunchOptions{
						Name:         "echo",
						Arguments:    map[string]string{"from": "menukit"},
						FallbackText: "hello",
						Type:         actions.Background,
					}, actions.WithTooltip("Runs echo in the background")),
				},
			},
			&menu.Section{
				Title:          "Values",
				Subtitle:       "saved to preferences",
				TitleSeparator: "·",
				Children: []menu.Entry{
					&menu.Numeric{
						Title: "Font Size",
						Options: numeric.Options{
							Predefined:     numeric.RangeSteps(fontSize.Min, fontSize.Max, 12),
							Limits:         numeric.Limits{Min: numeric.AtLeast(fontSize.Min), Max: numeric.AtMost(fontSize.Max)},
							Default:        numeric.Float(size),
							Format:         numeric.SuffixFormatter(nil, " pt"),
							OnValueChanged: save(PrefFontSize),
						},
					},
					&menu.Numeric{
						Title: "Temperature",
						Icon:  menu.IconPin,
						Options: numeric.Options{
							Predefined:         numeric.List(-5, 0, 5, 18, 21, 24, 30),
							Limits:             numeric.Limits{Min: numeric.AtLeast(-20), Max: numeric.Below(40)},
							Default:            numeric.Float(temperature),
							Format:             numeric.SuffixFormatter(numeric.PrecisionFormatter(3), " °C"),
							EnableCustomNumber: true,
							OnValueChanged:     save(PrefTemperature),
						},
					},
				},
			},
			&menu.Section{
				Title: "Recent",
				Limit: &menu.ChildrenLimit{
					Max: 3,
					More: func(hidden int) *menu.Item {
						return &menu.Item{
							Title: fmt.Sprintf("%d more…", hidden),
							OnAction: func(context.Context) error {
								env.Notify().HUD(fmt.Sprintf("%d snippets hidden", hidden))
								return nil
							},
						}
					},
				},
				Children: recent,
			},
			&menu.Submenu{
				Title:          "Long Titles",
				Subtitle:       "clipping",
				TitleSeparator: "-",
				Children: []menu.Entry{
					actions.OpenInBrowser(env, "https://github.com/charmbracelet/bubbletea/releases", nil,
						actions.WithTitle(long),
						actions.WithTextLimits(menu.TextLimits{MaxLength: clip})),
					actions.OpenInBrowser(env, "https://github.com/charmbracelet/bubbletea/releases", nil,
						actions.WithTitle(long),
						actions.WithTextLimits(menu.TextLimits{MaxLength: 24, DisableAutoTooltip: true})),
				},
			},
			&menu.Section{
				Title: "Settings",
				Children: []menu.Entry{
					actions.ConfigureCommand(env),
					actions.ConfigureExtension(env),
				},
			},
		},
	}
}
