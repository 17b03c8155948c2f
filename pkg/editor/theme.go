package editor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/nodecanvas/pkg/draw"
)

// ErrThemeNotFound is returned by LoadTheme when the file does not exist.
var ErrThemeNotFound = errors.New("theme file not found")

// Theme is the on-disk TOML representation of a graph's style and settings.
// Every field is optional; missing values keep their defaults, so a theme
// file can override just a handful of colors.
type Theme struct {
	Grid struct {
		PrimaryStep        *float32    `toml:"primary_step"`
		PrimaryThickness   *float32    `toml:"primary_thickness"`
		SecondaryThickness *float32    `toml:"secondary_thickness"`
		Background         *draw.Color `toml:"background"`
		PrimaryLines       *draw.Color `toml:"primary_lines"`
		SecondaryLines     *draw.Color `toml:"secondary_lines"`
	} `toml:"grid"`

	Node struct {
		Rounding                 *float32    `toml:"rounding"`
		Padding                  *float32    `toml:"padding"`
		OutlineThickness         *float32    `toml:"outline_thickness"`
		OutlineSelectedThickness *float32    `toml:"outline_selected_thickness"`
		Background               *draw.Color `toml:"background"`
		HoveredBackground        *draw.Color `toml:"hovered_background"`
		ActiveBackground         *draw.Color `toml:"active_background"`
		Outline                  *draw.Color `toml:"outline"`
		OutlineSelected          *draw.Color `toml:"outline_selected"`
	} `toml:"node"`

	Pin struct {
		Radius           *float32     `toml:"radius"`
		OutlineThickness *float32     `toml:"outline_thickness"`
		Background       *draw.Color  `toml:"background"`
		TypeColors       []draw.Color `toml:"type_colors"`
	} `toml:"pin"`

	Text struct {
		Color *draw.Color `toml:"color"`
	} `toml:"text"`

	Connection struct {
		Thickness *float32 `toml:"thickness"`
	} `toml:"connection"`

	Zoom struct {
		Rate      *float32 `toml:"rate"`
		Smoothing *float32 `toml:"smoothing"`
		Min       *float32 `toml:"min"`
		Max       *float32 `toml:"max"`
	} `toml:"zoom"`
}

// LoadTheme reads a theme file and applies it over the defaults, returning
// the resulting style and settings.
func LoadTheme(path string) (Style, Settings, error) {
	style, settings := DefaultStyle(), DefaultSettings()

	var theme Theme
	if _, err := toml.DecodeFile(path, &theme); err != nil {
		if os.IsNotExist(err) {
			return style, settings, fmt.Errorf("%w: %s", ErrThemeNotFound, path)
		}
		return style, settings, fmt.Errorf("decode theme %s: %w", path, err)
	}

	theme.apply(&style, &settings)
	return style, settings, nil
}

func (t *Theme) apply(s *Style, cfg *Settings) {
	setF := func(dst *float32, src *float32) {
		if src != nil {
			*dst = *src
		}
	}
	setC := func(id ColorID, src *draw.Color) {
		if src != nil {
			s.Colors[id] = *src
		}
	}

	setF(&s.GridPrimaryStep, t.Grid.PrimaryStep)
	setF(&s.GridPrimaryThickness, t.Grid.PrimaryThickness)
	setF(&s.GridSecondaryThickness, t.Grid.SecondaryThickness)
	setC(ColorGridBackground, t.Grid.Background)
	setC(ColorGridPrimaryLines, t.Grid.PrimaryLines)
	setC(ColorGridSecondaryLines, t.Grid.SecondaryLines)

	setF(&s.NodeRounding, t.Node.Rounding)
	setF(&s.NodePadding, t.Node.Padding)
	setF(&s.NodeOutlineThickness, t.Node.OutlineThickness)
	setF(&s.NodeOutlineSelectedThickness, t.Node.OutlineSelectedThickness)
	setC(ColorNodeBackground, t.Node.Background)
	setC(ColorNodeHoveredBackground, t.Node.HoveredBackground)
	setC(ColorNodeActiveBackground, t.Node.ActiveBackground)
	setC(ColorNodeOutline, t.Node.Outline)
	setC(ColorNodeOutlineSelected, t.Node.OutlineSelected)

	setF(&s.PinRadius, t.Pin.Radius)
	setF(&s.PinOutlineThickness, t.Pin.OutlineThickness)
	setC(ColorPinBackground, t.Pin.Background)
	if len(t.Pin.TypeColors) > 0 {
		s.PinColors = t.Pin.TypeColors
	}

	setC(ColorText, t.Text.Color)

	setF(&s.ConnectionThickness, t.Connection.Thickness)

	setF(&cfg.ZoomRate, t.Zoom.Rate)
	setF(&cfg.ZoomSmoothing, t.Zoom.Smoothing)
	setF(&cfg.ZoomMin, t.Zoom.Min)
	setF(&cfg.ZoomMax, t.Zoom.Max)
}

// WriteDefaultTheme writes a fully-populated theme file for the stock style,
// as a starting point for customization.
func WriteDefaultTheme(path string) error {
	s, cfg := DefaultStyle(), DefaultSettings()

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	doc := map[string]any{
		"grid": map[string]any{
			"primary_step":        s.GridPrimaryStep,
			"primary_thickness":   s.GridPrimaryThickness,
			"secondary_thickness": s.GridSecondaryThickness,
			"background":          s.Colors[ColorGridBackground],
			"primary_lines":       s.Colors[ColorGridPrimaryLines],
			"secondary_lines":     s.Colors[ColorGridSecondaryLines],
		},
		"node": map[string]any{
			"rounding":                   s.NodeRounding,
			"padding":                    s.NodePadding,
			"outline_thickness":          s.NodeOutlineThickness,
			"outline_selected_thickness": s.NodeOutlineSelectedThickness,
			"background":                 s.Colors[ColorNodeBackground],
			"hovered_background":         s.Colors[ColorNodeHoveredBackground],
			"active_background":          s.Colors[ColorNodeActiveBackground],
			"outline":                    s.Colors[ColorNodeOutline],
			"outline_selected":           s.Colors[ColorNodeOutlineSelected],
		},
		"pin": map[string]any{
			"radius":            s.PinRadius,
			"outline_thickness": s.PinOutlineThickness,
			"background":        s.Colors[ColorPinBackground],
			"type_colors":       s.PinColors,
		},
		"text": map[string]any{
			"color": s.Colors[ColorText],
		},
		"connection": map[string]any{
			"thickness": s.ConnectionThickness,
		},
		"zoom": map[string]any{
			"rate":      cfg.ZoomRate,
			"smoothing": cfg.ZoomSmoothing,
			"min":       cfg.ZoomMin,
			"max":       cfg.ZoomMax,
		},
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// ThemeWatcher reloads a theme file whenever it changes on disk, so a running
// editor can be restyled without restarting. Editors save themes by replacing
// the file, so both writes and renames trigger a reload.
type ThemeWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	onLoad  func(Style, Settings)
	onError func(error)
}

// WatchTheme watches path and calls onLoad with the freshly loaded style and
// settings after every change. Load failures (e.g. a half-written file) go to
// onError, which may be nil. Close the returned watcher to stop.
func WatchTheme(path string, onLoad func(Style, Settings), onError func(error)) (*ThemeWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create theme watcher: %w", err)
	}
	// Watch the directory: editors replace files on save, which would drop
	// a watch on the file itself.
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}
	return &ThemeWatcher{path: path, watcher: w, onLoad: onLoad, onError: onError}, nil
}

// Run processes watch events until ctx is cancelled or the watcher closes.
func (tw *ThemeWatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(tw.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			style, settings, err := LoadTheme(tw.path)
			if err != nil {
				if tw.onError != nil {
					tw.onError(err)
				}
				continue
			}
			tw.onLoad(style, settings)
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			if tw.onError != nil {
				tw.onError(err)
			}
		}
	}
}

// Close stops the watcher.
func (tw *ThemeWatcher) Close() error { return tw.watcher.Close() }
