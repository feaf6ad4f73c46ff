// Package clipboard moves serialized component forests between
// documents, sessions and templates. The in-memory payload is
// authoritative; the OS clipboard is a best-effort bridge carrying a
// versioned JSON envelope, so a copy made in one browser tab can be
// pasted into another template entirely.
package clipboard

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/draftforge/draftforge/internal/engine/document"
)

// EnvelopeVersion is the current clipboard envelope schema version.
const EnvelopeVersion = 1

// Source identifies where a clipboard payload was copied from.
type Source struct {
	TemplateID string `json:"templateId"`
	PageID     string `json:"pageId"`
	PageName   string `json:"pageName"`
}

// Envelope is the versioned, source-tagged JSON structure written to
// the OS clipboard.
type Envelope struct {
	Version    int                   `json:"version"`
	Source     Source                `json:"source"`
	Components []document.Serialized `json:"components"`
	CopiedAt   string                `json:"copiedAt"`
}

// Encode renders the envelope as JSON.
func (e Envelope) Encode() ([]byte, error) {
	return json.Marshal(e)
}

// ParseEnvelope validates and decodes OS-clipboard text. Arbitrary
// text lands here, since other applications write to the clipboard
// too, so the shape is checked structurally before decoding: the version
// must match, components must be an array, and the source template and
// page ids must be strings. Anything else returns false with no
// error; malformed foreign content is not a failure condition.
func ParseEnvelope(text string) (Envelope, bool) {
	if !gjson.Valid(text) {
		return Envelope{}, false
	}
	if gjson.Get(text, "version").Int() != EnvelopeVersion {
		return Envelope{}, false
	}
	if !gjson.Get(text, "components").IsArray() {
		return Envelope{}, false
	}
	if gjson.Get(text, "source.templateId").Type != gjson.String {
		return Envelope{}, false
	}
	if gjson.Get(text, "source.pageId").Type != gjson.String {
		return Envelope{}, false
	}

	var env Envelope
	if err := json.Unmarshal([]byte(text), &env); err != nil {
		return Envelope{}, false
	}
	return env, true
}

// FilterKnown drops every serialized node whose type is not in known,
// at any depth. Dropping a node discards its whole subtree and counts
// once; slots emptied by the filtering are pruned. The input forest is
// left untouched. A nil known set means every type is accepted.
func FilterKnown(forest []document.Serialized, known map[string]struct{}) ([]document.Serialized, int) {
	if known == nil {
		return forest, 0
	}
	return filterForest(forest, known)
}

func filterForest(forest []document.Serialized, known map[string]struct{}) ([]document.Serialized, int) {
	kept := make([]document.Serialized, 0, len(forest))
	dropped := 0
	for _, s := range forest {
		if _, ok := known[s.Type]; !ok {
			dropped++
			continue
		}
		if len(s.Slots) > 0 {
			slots := make(map[string][]document.Serialized, len(s.Slots))
			for name, children := range s.Slots {
				keptChildren, n := filterForest(children, known)
				dropped += n
				if len(keptChildren) > 0 {
					slots[name] = keptChildren
				}
			}
			if len(slots) == 0 {
				slots = nil
			}
			s.Slots = slots
		}
		kept = append(kept, s)
	}
	return kept, dropped
}
