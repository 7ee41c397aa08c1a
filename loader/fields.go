package loader

import (
	"strings"

	"github.com/International-Slackline-Association/SlackData/utils"
)

// identityFields extracts the record name and brand name. Both are
// required: a record with an empty name or brand can never satisfy the
// catalog's non-null brand reference, so it is rejected outright instead
// of being passed through (some source datasets leave these blank).
func identityFields(raw RawRecord, brandKey string) (string, string, error) {
	name := strings.TrimSpace(utils.String(raw["name"]))
	if name == "" {
		return "", "", validationErrorf("record has no name")
	}
	brand := strings.TrimSpace(utils.String(raw[brandKey]))
	if brand == "" {
		return "", "", validationErrorf("%s: record has no %s", name, brandKey)
	}
	return name, brand, nil
}

// field reads a key from the record, falling back to the nested
// "specifications" object used by the newer weblock dataset generation.
func field(raw RawRecord, key string) any {
	if v, ok := raw[key]; ok && v != nil && v != "" {
		return v
	}
	if specs, ok := raw["specifications"].(map[string]any); ok {
		return specs[key]
	}
	return nil
}

// pricingSources collects the free-text price sources of a record in
// priority order: each pricing entry's text then tooltip, then the
// price field of the specifications object.
func pricingSources(raw RawRecord) []string {
	var sources []string
	appendEntry := func(entry map[string]any) {
		sources = append(sources, utils.String(entry["text"]), utils.String(entry["tooltip"]))
	}

	switch pricing := raw["pricing"].(type) {
	case map[string]any:
		appendEntry(pricing)
	case []any:
		for _, e := range pricing {
			if entry, ok := e.(map[string]any); ok {
				appendEntry(entry)
			}
		}
	}

	if specs, ok := raw["specifications"].(map[string]any); ok {
		sources = append(sources, utils.String(specs["price"]))
	}
	return sources
}
