package reportdoc

import (
	"regexp"
	"strings"
)

// Block is one typed block-level node produced from a section body.
// Parsing to nodes and serializing nodes to HTML are separate stages, so
// each is testable on its own representation.
type Block interface {
	blockNode()
}

// HeadingBlock is a "### " subheading line.
type HeadingBlock struct {
	Text string
}

// ParagraphBlock is a single standalone text line.
type ParagraphBlock struct {
	Text string
}

// OrderedListBlock is a batch of consecutive "N. " item lines.
type OrderedListBlock struct {
	Items []string
}

// UnorderedListBlock is a batch of consecutive "- " item lines.
type UnorderedListBlock struct {
	Items []string
}

func (HeadingBlock) blockNode()       {}
func (ParagraphBlock) blockNode()     {}
func (OrderedListBlock) blockNode()   {}
func (UnorderedListBlock) blockNode() {}

// orderedItem matches a "N. text" list line and captures the item text.
var orderedItem = regexp.MustCompile(`^\d+\.\s+(.*)$`)

// listState tracks the open list batch during block parsing.
type listState int

const (
	listNone listState = iota
	listOrdered
	listUnordered
)

// ParseBlocks runs the line-oriented state machine over a section body and
// returns its typed block sequence. Consecutive list lines of the same kind
// are absorbed into one batch; a blank line, a kind change, a subheading, or
// a paragraph line closes the open batch. Emitted block order matches source
// line order exactly.
func ParseBlocks(lines []string) []Block {
	var (
		blocks []Block
		state  = listNone
		items  []string
	)

	flush := func() {
		if state == listNone {
			return
		}
		if state == listOrdered {
			blocks = append(blocks, OrderedListBlock{Items: items})
		} else {
			blocks = append(blocks, UnorderedListBlock{Items: items})
		}
		state = listNone
		items = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			flush()

		case strings.HasPrefix(trimmed, "### "):
			flush()
			blocks = append(blocks, HeadingBlock{Text: strings.TrimSpace(trimmed[4:])})

		case orderedItem.MatchString(trimmed):
			if state != listOrdered {
				flush()
				state = listOrdered
			}
			items = append(items, orderedItem.FindStringSubmatch(trimmed)[1])

		case strings.HasPrefix(trimmed, "- "):
			if state != listUnordered {
				flush()
				state = listUnordered
			}
			items = append(items, trimmed[2:])

		default:
			flush()
			blocks = append(blocks, ParagraphBlock{Text: trimmed})
		}
	}

	flush()
	return blocks
}
