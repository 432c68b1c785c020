package monitor

import (
	"fmt"
)

// Extract walks data.cards[0].content of a decoded board body and returns
// the entry list it holds. Any missing level, wrong type, or empty cards
// array is reported as ErrShape.
func Extract(body any) ([]RawEntry, error) {
	root, ok := body.(map[string]any)
	if !ok {
		return nil, shapeError("body is not an object")
	}

	data, ok := root["data"].(map[string]any)
	if !ok {
		return nil, shapeError("data is missing or not an object")
	}

	cards, ok := data["cards"].([]any)
	if !ok {
		return nil, shapeError("data.cards is missing or not an array")
	}
	if len(cards) == 0 {
		return nil, shapeError("data.cards is empty")
	}

	card, ok := cards[0].(map[string]any)
	if !ok {
		return nil, shapeError("data.cards[0] is not an object")
	}

	content, ok := card["content"].([]any)
	if !ok {
		return nil, shapeError("data.cards[0].content is missing or not an array")
	}

	entries := make([]RawEntry, 0, len(content))
	for i, item := range content {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, shapeError(fmt.Sprintf("data.cards[0].content[%d] is not an object", i))
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func shapeError(detail string) error {
	return fmt.Errorf("%w: %s", ErrShape, detail)
}
