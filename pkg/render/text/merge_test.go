package text

import "testing"

func TestMergeLines(t *testing.T) {
	tests := []struct {
		name string
		top  string
		bot  string
		prio mergePriority
		want string
	}{
		{
			"vertical wire through quantum wire",
			"  │  ",
			"─────",
			priorityBot,
			"──┼──",
		},
		{
			"vertical wire through classical wire",
			"  │  ",
			"═════",
			priorityBot,
			"══╪══",
		},
		{
			"double wire through quantum wire",
			" ║ ",
			"───",
			priorityBot,
			"─╫─",
		},
		{
			"double wire through classical wire",
			" ║ ",
			"═══",
			priorityBot,
			"═╬═",
		},
		{
			"crossing continues downward",
			"─┼─",
			"   ",
			priorityBot,
			" │ ",
		},
		{
			"double crossing continues downward",
			"═╬═",
			"   ",
			priorityBot,
			" ║ ",
		},
		{
			"box corners join between stacked boxes",
			"└───┘",
			"┌───┐",
			priorityTop,
			"├───┤",
		},
		{
			"controlled box boundary",
			" └─┬─┘ ",
			"┌──┴──┐",
			priorityTop,
			"┌┴─┴─┴┐",
		},
		{
			"inline label over wire stub",
			" │       ",
			" │1.5708 ",
			priorityTop,
			" │1.5708 ",
		},
		{
			"wire wins over blank with bottom priority",
			"─────",
			"     ",
			priorityBot,
			"     ",
		},
		{
			"wire survives blank with top priority",
			"─────",
			"     ",
			priorityTop,
			"─────",
		},
		{
			"tee keeps its wire with bottom priority",
			"──┬──",
			"     ",
			priorityBot,
			"  │  ",
		},
	}
	for _, tt := range tests {
		if got := mergeLines(tt.top, tt.bot, tt.prio); got != tt.want {
			t.Errorf("%s: mergeLines(%q, %q) = %q, want %q", tt.name, tt.top, tt.bot, got, tt.want)
		}
	}
}

func TestShouldCompress(t *testing.T) {
	tests := []struct {
		name string
		mode Compression
		prev string
		top  string
		want bool
	}{
		{"high always merges", CompressHigh, "──┬──", "──┴──", true},
		{"low never merges", CompressLow, "     ", "     ", false},
		{"medium merges blank boundaries", CompressMedium, "     ", "     ", true},
		{"medium keeps facing connectors apart", CompressMedium, "──┬──", "──┴──", false},
		{"medium keeps offset connectors merged", CompressMedium, "┬────", "────┴", true},
		{"medium keeps text rows apart", CompressMedium, "  twoQ ", "      ", false},
		{"medium merges box walls", CompressMedium, "└───┘", "┌───┐", true},
	}
	for _, tt := range tests {
		d := &drawer{cfg: config{compression: tt.mode}}
		if got := d.shouldCompress(tt.top, tt.prev); got != tt.want {
			t.Errorf("%s: shouldCompress(%q, %q) = %v, want %v", tt.name, tt.prev, tt.top, got, tt.want)
		}
	}
}
