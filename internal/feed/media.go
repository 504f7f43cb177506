package feed

import (
	"encoding/json"

	"github.com/Jeffail/gabs"
)

// Media is the parsed media list of a post. When the stored value is not a JSON list
// it is kept degraded and rendered as the raw string it was stored as.
type Media struct {
	Items []any
	Raw   string
	OK    bool
}

// ParseMedia never fails, nil means the post has no media.
func ParseMedia(raw *string) *Media {
	if raw == nil || *raw == "" {
		return nil
	}

	container, err := gabs.ParseJSON([]byte(*raw))
	if err != nil {
		return &Media{Raw: *raw}
	}

	items, ok := container.Data().([]any)
	if !ok {
		return &Media{Raw: *raw}
	}

	return &Media{Items: items, Raw: *raw, OK: true}
}

func (m Media) MarshalJSON() ([]byte, error) {
	if m.OK {
		return json.Marshal(m.Items)
	}
	return json.Marshal(m.Raw)
}
