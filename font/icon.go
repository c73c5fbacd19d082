package font

// iconGlyph is the 5x8 person silhouette used by the crowding gauge.
var iconGlyph = parseGlyph(
	" ### ",
	" ### ",
	"  #  ",
	" ### ",
	"#####",
	"#####",
	" # # ",
	" # # ",
)

func parseGlyph(rows ...string) [][]bool {
	mask := make([][]bool, len(rows))
	for i, row := range rows {
		mask[i] = make([]bool, len(row))
		for j := range row {
			mask[i][j] = row[j] == '#'
		}
	}
	return mask
}
