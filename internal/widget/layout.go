package widget

import (
	"encoding/json"
	"fmt"

	"dashforge/internal/engine"

	"github.com/rs/zerolog/log"
)

// Position is a widget's canvas placement in grid units.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is a widget's canvas extent in grid units.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Widget is one entry of a dashboard layout document: the engine binding
// plus the presentation fields the engine itself never reads.
type Widget struct {
	engine.Binding
	Title    string   `json:"title,omitempty"`
	Position Position `json:"position"`
	Size     Size     `json:"size"`
}

// Layout is a decoded dashboard layout document. Warnings collect the
// structural problems that were tolerated rather than treated as fatal.
type Layout struct {
	Widgets  []Widget `json:"widgets"`
	Warnings []string `json:"-"`
}

// Widget returns the widget with the given id, or nil.
func (l *Layout) Widget(id string) *Widget {
	for i := range l.Widgets {
		if l.Widgets[i].ID == id {
			return &l.Widgets[i]
		}
	}
	return nil
}

// ParseLayout decodes a serialized dashboard layout document. Malformed
// widget entries are skipped with a warning instead of failing the whole
// document, so one bad configuration never takes a dashboard down. Only a
// document that is not a JSON object at all is an error.
func ParseLayout(data []byte) (*Layout, error) {
	var doc struct {
		Widgets []json.RawMessage `json:"widgets"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode layout document: %w", err)
	}

	layout := &Layout{}
	layout.Warnings = append(layout.Warnings, validateLayout(data)...)

	for i, raw := range doc.Widgets {
		var w Widget
		if err := json.Unmarshal(raw, &w); err != nil {
			warning := fmt.Sprintf("widget %d: skipped malformed entry: %v", i, err)
			layout.Warnings = append(layout.Warnings, warning)
			log.Warn().Int("index", i).Err(err).Msg("Skipping malformed widget entry")
			continue
		}
		layout.Widgets = append(layout.Widgets, w)
	}

	return layout, nil
}
