package text

import "strings"

// mergePriority biases mergeLines when a glyph pair is ambiguous:
// priorityTop keeps the upper line's glyph, priorityBot lets verticals
// from the upper line fall through into the lower one.
type mergePriority int

const (
	priorityTop mergePriority = iota
	priorityBot
)

// mergeLines overlays two text rows that occupy the same screen line,
// resolving each glyph pair so crossings, joints, and falling
// verticals come out right. top is the upper row, bot the lower one.
//
// This single table is what turns stacked element rows into a
// connected drawing: a '│' left hanging at the bottom of one wire
// meets the '─' of the wire below and becomes '┼', then surfaces as
// '│' again underneath.
func mergeLines(top, bot string, prio mergePriority) string {
	topR := []rune(top)
	botR := []rune(bot)
	var ret strings.Builder
	for i, botc := range botR {
		if i >= len(topR) {
			ret.WriteRune(botc)
			continue
		}
		topc := topR[i]
		switch {
		case topc == botc:
			ret.WriteRune(topc)
		case strings.ContainsRune("┼╪", topc) && botc == ' ':
			ret.WriteRune('│')
		case topc == ' ':
			ret.WriteRune(botc)
		case strings.ContainsRune("┬╥", topc) && strings.ContainsRune(" ║│", botc) && prio == priorityTop:
			ret.WriteRune(topc)
		case topc == '┬' && botc == ' ' && prio == priorityBot:
			ret.WriteRune('│')
		case topc == '╥' && botc == ' ' && prio == priorityBot:
			ret.WriteRune('║')
		case strings.ContainsRune("┬│", topc) && botc == '═':
			ret.WriteRune('╪')
		case strings.ContainsRune("┬│", topc) && botc == '─':
			ret.WriteRune('┼')
		case strings.ContainsRune("└┘║│░", topc) && botc == ' ' && prio == priorityTop:
			ret.WriteRune(topc)
		case strings.ContainsRune("─═", topc) && botc == ' ' && prio == priorityTop:
			ret.WriteRune(topc)
		case strings.ContainsRune("─═", topc) && botc == ' ' && prio == priorityBot:
			ret.WriteRune(botc)
		case strings.ContainsRune("║╥", topc) && botc == '═':
			ret.WriteRune('╬')
		case strings.ContainsRune("║╥", topc) && botc == '─':
			ret.WriteRune('╫')
		case strings.ContainsRune("║╫╬", topc) && botc == ' ':
			ret.WriteRune('║')
		case topc == '└' && botc == '┌':
			ret.WriteRune('├')
		case topc == '┘' && botc == '┐':
			ret.WriteRune('┤')
		case strings.ContainsRune("┐┌", botc) && prio == priorityTop:
			ret.WriteRune('┬')
		case strings.ContainsRune("┘└", topc) && botc == '─' && prio == priorityTop:
			ret.WriteRune('┴')
		default:
			ret.WriteRune(botc)
		}
	}
	return ret.String()
}
