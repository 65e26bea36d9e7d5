package adminform

import (
	"strconv"
	"strings"
)

// Action is what a form submit asks for: persist the page, or grow/shrink one
// row group and re-render without saving.
type Action struct {
	Kind  ActionKind
	Group string
	Index int
}

type ActionKind int

const (
	ActionSave ActionKind = iota
	ActionAdd
	ActionRemove
)

// ParseAction decodes the submit button value. Anything unrecognized is
// treated as a plain save so a malformed value cannot drop edits.
func ParseAction(value string) Action {
	switch {
	case strings.HasPrefix(value, "add:"):
		return Action{Kind: ActionAdd, Group: strings.TrimPrefix(value, "add:")}
	case strings.HasPrefix(value, "remove:"):
		rest := strings.TrimPrefix(value, "remove:")
		group, indexPart, ok := strings.Cut(rest, ":")
		if !ok {
			return Action{Kind: ActionSave}
		}
		index, err := strconv.Atoi(indexPart)
		if err != nil || index < 0 {
			return Action{Kind: ActionSave}
		}
		return Action{Kind: ActionRemove, Group: group, Index: index}
	default:
		return Action{Kind: ActionSave}
	}
}
