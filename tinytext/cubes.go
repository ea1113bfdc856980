package tinytext

// cubeCells holds the voxel font on an 8-row grid, row 0 at the baseline.
// Lowercase letters are a simplified tier: fewer cells, x-height glyphs,
// descenders on negative rows.
var cubeCells = map[rune][]cell{
	' ': {},
	'!': {
		{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 5}, {2, 6},
		{2, 7},
	},
	'"': {
		{1, 5}, {1, 6}, {1, 7}, {3, 5}, {3, 6}, {3, 7},
	},
	'#': {
		{1, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6},
		{3, 1}, {3, 2}, {3, 3}, {3, 4}, {3, 5}, {3, 6},
		{0, 2}, {2, 2}, {4, 2}, {0, 5}, {2, 5}, {4, 5},
	},
	'$': {
		{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}, {2, 5},
		{2, 6}, {2, 7}, {0, 1}, {1, 1}, {3, 1}, {0, 2},
		{1, 3}, {3, 3}, {0, 4}, {1, 5}, {3, 5}, {0, 6},
		{1, 6}, {3, 6},
	},
	'%': {
		{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5},
		{6, 6}, {7, 7}, {0, 5}, {0, 6}, {1, 6}, {1, 5},
		{6, 1}, {6, 2}, {7, 2}, {7, 1},
	},
	'&': {
		{1, 0}, {2, 0}, {3, 0}, {0, 1}, {4, 1}, {0, 2},
		{1, 3}, {2, 3}, {0, 4}, {3, 4}, {0, 5}, {4, 5},
		{1, 6}, {2, 6}, {4, 6}, {5, 6},
	},
	'\'': {
		{2, 5}, {2, 6}, {2, 7},
	},
	'(': {
		{2, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5}, {2, 6},
	},
	')': {
		{1, 1}, {2, 2}, {2, 3}, {2, 4}, {2, 5}, {1, 6},
	},
	'*': {
		{2, 2}, {2, 3}, {2, 4}, {1, 3}, {3, 3}, {1, 2},
		{3, 4}, {1, 4}, {3, 2},
	},
	'+': {
		{2, 1}, {2, 2}, {2, 3}, {2, 4}, {2, 5}, {0, 3},
		{1, 3}, {3, 3}, {4, 3},
	},
	',': {
		{2, 0}, {1, 1},
	},
	'-': {
		{0, 3}, {1, 3}, {2, 3}, {3, 3}, {4, 3},
	},
	'.': {
		{2, 0},
	},
	'/': {
		{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5},
		{6, 6}, {7, 7},
	},
	'0': {
		{1, 0}, {2, 0}, {3, 0}, {0, 1}, {4, 1}, {0, 2},
		{4, 2}, {0, 3}, {4, 3}, {0, 4}, {4, 4}, {0, 5},
		{4, 5}, {1, 6}, {2, 6}, {3, 6},
	},
	'1': {
		{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}, {2, 5},
		{2, 6}, {1, 5}, {0, 0}, {1, 0}, {3, 0}, {4, 0},
	},
	'2': {
		{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {0, 1},
		{1, 2}, {2, 3}, {3, 4}, {4, 5}, {0, 6}, {1, 6},
		{2, 6}, {3, 6},
	},
	'3': {
		{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 1}, {4, 2},
		{1, 3}, {2, 3}, {3, 3}, {4, 4}, {4, 5}, {0, 6},
		{1, 6}, {2, 6}, {3, 6},
	},
	'4': {
		{0, 3}, {1, 3}, {2, 3}, {3, 3}, {4, 3}, {3, 0},
		{3, 1}, {3, 2}, {3, 4}, {3, 5}, {3, 6}, {0, 4},
		{1, 5}, {2, 6},
	},
	'5': {
		{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 1}, {4, 2},
		{0, 3}, {1, 3}, {2, 3}, {3, 3}, {0, 4}, {0, 5},
		{0, 6}, {1, 6}, {2, 6}, {3, 6}, {4, 6},
	},
	'6': {
		{1, 0}, {2, 0}, {3, 0}, {0, 1}, {4, 1}, {0, 2},
		{4, 2}, {0, 3}, {1, 3}, {2, 3}, {3, 3}, {0, 4},
		{0, 5}, {1, 6}, {2, 6}, {3, 6},
	},
	'7': {
		{0, 6}, {1, 6}, {2, 6}, {3, 6}, {4, 6}, {4, 5},
		{3, 4}, {2, 3}, {1, 2}, {1, 1}, {1, 0},
	},
	'8': {
		{1, 0}, {2, 0}, {3, 0}, {0, 1}, {4, 1}, {0, 2},
		{4, 2}, {1, 3}, {2, 3}, {3, 3}, {0, 4}, {4, 4},
		{0, 5}, {4, 5}, {1, 6}, {2, 6}, {3, 6},
	},
	'9': {
		{1, 0}, {2, 0}, {3, 0}, {4, 1}, {4, 2}, {0, 3},
		{1, 3}, {2, 3}, {3, 3}, {4, 3}, {0, 4}, {4, 4},
		{0, 5}, {4, 5}, {1, 6}, {2, 6}, {3, 6},
	},
	':': {
		{2, 1}, {2, 5},
	},
	';': {
		{2, 0}, {1, 1}, {2, 5},
	},
	'<': {
		{4, 1}, {3, 2}, {2, 3}, {1, 4}, {2, 5}, {3, 6},
		{4, 7},
	},
	'=': {
		{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2}, {0, 4},
		{1, 4}, {2, 4}, {3, 4}, {4, 4},
	},
	'>': {
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {2, 5}, {1, 6},
		{0, 7},
	},
	'?': {
		{0, 5}, {1, 6}, {2, 6}, {3, 6}, {4, 5}, {4, 4},
		{3, 3}, {2, 3}, {2, 2}, {2, 0},
	},
	'@': {
		{1, 0}, {2, 0}, {3, 0}, {4, 0}, {0, 1}, {5, 1},
		{0, 2}, {2, 2}, {3, 2}, {4, 2}, {5, 2}, {0, 3},
		{2, 3}, {4, 3}, {0, 4}, {2, 4}, {3, 4}, {4, 4},
		{1, 5}, {2, 5}, {3, 5}, {4, 5},
	},
	'A': {
		{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{4, 0}, {4, 1}, {4, 2}, {4, 3}, {4, 4}, {4, 5},
		{1, 6}, {2, 6}, {3, 6}, {1, 3}, {2, 3}, {3, 3},
	},
	'B': {
		{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{0, 6}, {1, 0}, {2, 0}, {3, 0}, {4, 1}, {4, 2},
		{1, 3}, {2, 3}, {3, 3}, {4, 4}, {4, 5}, {1, 6},
		{2, 6}, {3, 6},
	},
	'C': {
		{1, 0}, {2, 0}, {3, 0}, {4, 0}, {0, 1}, {0, 2},
		{0, 3}, {0, 4}, {0, 5}, {1, 6}, {2, 6}, {3, 6},
		{4, 6},
	},
	'D': {
		{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{0, 6}, {1, 0}, {2, 0}, {3, 0}, {4, 1}, {4, 2},
		{4, 3}, {4, 4}, {4, 5}, {1, 6}, {2, 6}, {3, 6},
	},
	'E': {
		{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{0, 6}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {1, 3},
		{2, 3}, {3, 3}, {1, 6}, {2, 6}, {3, 6}, {4, 6},
	},
	'F': {
		{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{0, 6}, {1, 3}, {2, 3}, {3, 3}, {1, 6}, {2, 6},
		{3, 6}, {4, 6},
	},
	'G': {
		{1, 0}, {2, 0}, {3, 0}, {4, 0}, {0, 1}, {0, 2},
		{0, 3}, {0, 4}, {0, 5}, {1, 6}, {2, 6}, {3, 6},
		{4, 6}, {4, 5}, {4, 4}, {3, 3}, {4, 3},
	},
	'H': {
		{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{0, 6}, {4, 0}, {4, 1}, {4, 2}, {4, 3}, {4, 4},
		{4, 5}, {4, 6}, {1, 3}, {2, 3}, {3, 3},
	},
	'I': {
		{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {2, 1},
		{2, 2}, {2, 3}, {2, 4}, {2, 5}, {0, 6}, {1, 6},
		{2, 6}, {3, 6}, {4, 6},
	},
	'J': {
		{0, 0}, {1, 0}, {2, 0}, {3, 1}, {3, 2}, {3, 3},
		{3, 4}, {3, 5}, {0, 6}, {1, 6}, {2, 6}, {3, 6},
		{4, 6},
	},
	'K': {
		{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{0, 6}, {4, 0}, {3, 1}, {2, 2}, {1, 3}, {2, 4},
		{3, 5}, {4, 6},
	},
	'L': {
		{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{0, 6}, {1, 0}, {2, 0}, {3, 0}, {4, 0},
	},
	'M': {
		{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{0, 6}, {6, 0}, {6, 1}, {6, 2}, {6, 3}, {6, 4},
		{6, 5}, {6, 6}, {1, 5}, {2, 4}, {3, 3}, {4, 4},
		{5, 5},
	},
	'N': {
		{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{0, 6}, {4, 0}, {4, 1}, {4, 2}, {4, 3}, {4, 4},
		{4, 5}, {4, 6}, {1, 1}, {2, 2}, {3, 3},
	},
	'O': {
		{1, 0}, {2, 0}, {3, 0}, {0, 1}, {4, 1}, {0, 2},
		{4, 2}, {0, 3}, {4, 3}, {0, 4}, {4, 4}, {0, 5},
		{4, 5}, {1, 6}, {2, 6}, {3, 6},
	},
	'P': {
		{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{0, 6}, {1, 3}, {2, 3}, {3, 3}, {4, 4}, {4, 5},
		{1, 6}, {2, 6}, {3, 6},
	},
	'Q': {
		{1, 0}, {2, 0}, {3, 0}, {0, 1}, {4, 1}, {0, 2},
		{4, 2}, {0, 3}, {4, 3}, {0, 4}, {4, 4}, {0, 5},
		{4, 5}, {1, 6}, {2, 6}, {3, 6}, {3, 1}, {4, 0},
	},
	'R': {
		{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{0, 6}, {1, 3}, {2, 3}, {3, 3}, {4, 4}, {4, 5},
		{1, 6}, {2, 6}, {3, 6}, {2, 2}, {3, 1}, {4, 0},
	},
	'S': {
		{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 1}, {4, 2},
		{3, 3}, {2, 3}, {1, 3}, {0, 4}, {0, 5}, {1, 6},
		{2, 6}, {3, 6}, {4, 6},
	},
	'T': {
		{0, 6}, {1, 6}, {2, 6}, {3, 6}, {4, 6}, {2, 0},
		{2, 1}, {2, 2}, {2, 3}, {2, 4}, {2, 5},
	},
	'U': {
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}, {0, 6},
		{4, 1}, {4, 2}, {4, 3}, {4, 4}, {4, 5}, {4, 6},
		{1, 0}, {2, 0}, {3, 0},
	},
	'V': {
		{0, 4}, {0, 5}, {0, 6}, {1, 2}, {1, 3}, {2, 0},
		{2, 1}, {3, 2}, {3, 3}, {4, 4}, {4, 5}, {4, 6},
	},
	'W': {
		{0, 2}, {0, 3}, {0, 4}, {0, 5}, {0, 6}, {1, 0},
		{1, 1}, {2, 2}, {2, 3}, {3, 0}, {3, 1}, {4, 2},
		{4, 3}, {4, 4}, {4, 5}, {4, 6},
	},
	'X': {
		{0, 0}, {1, 1}, {2, 2}, {2, 3}, {2, 4}, {3, 5},
		{4, 6}, {4, 0}, {3, 1}, {1, 5}, {0, 6},
	},
	'Y': {
		{0, 6}, {1, 5}, {2, 4}, {2, 3}, {2, 2}, {2, 1},
		{2, 0}, {3, 5}, {4, 6},
	},
	'Z': {
		{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {4, 1},
		{3, 2}, {2, 3}, {1, 4}, {0, 5}, {0, 6}, {1, 6},
		{2, 6}, {3, 6}, {4, 6},
	},
	'[': {
		{1, 0}, {1, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5},
		{1, 6}, {2, 0}, {3, 0}, {2, 6}, {3, 6},
	},
	'\\': {
		{0, 7}, {1, 6}, {2, 5}, {3, 4}, {4, 3}, {5, 2},
		{6, 1}, {7, 0},
	},
	']': {
		{3, 0}, {3, 1}, {3, 2}, {3, 3}, {3, 4}, {3, 5},
		{3, 6}, {1, 0}, {2, 0}, {1, 6}, {2, 6},
	},
	'^': {
		{2, 7}, {1, 6}, {3, 6}, {0, 5}, {4, 5},
	},
	'_': {
		{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0},
	},
	'`': {
		{1, 7}, {2, 6},
	},
	'a': {
		{1, 0}, {2, 0}, {3, 0}, {4, 1}, {4, 2}, {4, 3},
		{4, 4}, {0, 2}, {1, 2}, {2, 2}, {3, 2}, {0, 4},
		{1, 4}, {2, 4}, {3, 4},
	},
	'b': {
		{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{0, 6}, {1, 0}, {2, 0}, {3, 0}, {4, 1}, {4, 2},
		{4, 3}, {1, 4}, {2, 4}, {3, 4},
	},
	'c': {
		{1, 0}, {2, 0}, {3, 0}, {0, 1}, {0, 2}, {0, 3},
		{1, 4}, {2, 4}, {3, 4},
	},
	'd': {
		{4, 0}, {4, 1}, {4, 2}, {4, 3}, {4, 4}, {4, 5},
		{4, 6}, {1, 0}, {2, 0}, {3, 0}, {0, 1}, {0, 2},
		{0, 3}, {1, 4}, {2, 4}, {3, 4},
	},
	'e': {
		{1, 0}, {2, 0}, {3, 0}, {0, 1}, {0, 2}, {1, 2},
		{2, 2}, {3, 2}, {4, 2}, {0, 3}, {1, 4}, {2, 4},
		{3, 4},
	},
	'f': {
		{1, 0}, {1, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5},
		{2, 6}, {3, 6}, {0, 3}, {2, 3},
	},
	'g': {
		{1, 0}, {2, 0}, {3, 0}, {4, 1}, {4, 2}, {4, 3},
		{4, 4}, {0, 2}, {1, 2}, {2, 2}, {3, 2}, {0, 4},
		{1, 4}, {2, 4}, {3, 4}, {0, -1}, {1, -2}, {2, -2},
		{3, -2},
	},
	'h': {
		{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{0, 6}, {1, 2}, {2, 2}, {3, 2}, {4, 1}, {4, 0},
	},
	'i': {
		{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}, {2, 6},
	},
	'j': {
		{3, 0}, {3, 1}, {3, 2}, {3, 3}, {3, 4}, {3, 6},
		{0, -1}, {1, -1}, {2, -1},
	},
	'k': {
		{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{0, 6}, {3, 0}, {2, 1}, {1, 2}, {2, 3}, {3, 4},
	},
	'l': {
		{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}, {2, 5},
		{2, 6},
	},
	'm': {
		{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 2},
		{2, 1}, {2, 0}, {3, 2}, {4, 1}, {4, 0}, {6, 0},
		{6, 1}, {6, 2}, {6, 3}, {6, 4},
	},
	'n': {
		{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 2},
		{2, 2}, {3, 2}, {4, 1}, {4, 0},
	},
	'o': {
		{1, 0}, {2, 0}, {3, 0}, {0, 1}, {4, 1}, {0, 2},
		{4, 2}, {0, 3}, {4, 3}, {1, 4}, {2, 4}, {3, 4},
	},
	'p': {
		{0, -2}, {0, -1}, {0, 0}, {0, 1}, {0, 2}, {0, 3},
		{0, 4}, {1, 2}, {2, 2}, {3, 2}, {4, 3}, {4, 4},
		{1, 4}, {2, 4}, {3, 4},
	},
	'q': {
		{4, -2}, {4, -1}, {4, 0}, {4, 1}, {4, 2}, {4, 3},
		{4, 4}, {1, 0}, {2, 0}, {3, 0}, {0, 1}, {0, 2},
		{0, 3}, {1, 4}, {2, 4}, {3, 4},
	},
	'r': {
		{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 2},
		{2, 3}, {3, 4},
	},
	's': {
		{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 1}, {3, 2},
		{2, 2}, {1, 2}, {0, 3}, {1, 4}, {2, 4}, {3, 4},
		{4, 4},
	},
	't': {
		{1, 0}, {1, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5},
		{0, 3}, {2, 3}, {2, 0}, {3, 0},
	},
	'u': {
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {4, 0}, {4, 1},
		{4, 2}, {4, 3}, {4, 4}, {1, 0}, {2, 0}, {3, 0},
	},
	'v': {
		{0, 3}, {0, 4}, {1, 1}, {1, 2}, {2, 0}, {3, 1},
		{3, 2}, {4, 3}, {4, 4},
	},
	'w': {
		{0, 2}, {0, 3}, {0, 4}, {1, 0}, {2, 1}, {2, 2},
		{3, 0}, {4, 2}, {4, 3}, {4, 4},
	},
	'x': {
		{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}, {4, 0},
		{3, 1}, {1, 3}, {0, 4},
	},
	'y': {
		{0, 4}, {1, 3}, {2, 2}, {2, 1}, {2, 0}, {3, 3},
		{4, 4}, {1, -1}, {0, -2},
	},
	'z': {
		{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {4, 1},
		{3, 2}, {2, 2}, {1, 3}, {0, 4}, {1, 4}, {2, 4},
		{3, 4}, {4, 4},
	},
	'{': {
		{2, 0}, {2, 1}, {2, 2}, {1, 3}, {2, 4}, {2, 5},
		{2, 6}, {3, 0}, {3, 6},
	},
	'|': {
		{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}, {2, 5},
		{2, 6}, {2, 7},
	},
	'}': {
		{2, 0}, {2, 1}, {2, 2}, {3, 3}, {2, 4}, {2, 5},
		{2, 6}, {1, 0}, {1, 6},
	},
	'~': {
		{0, 3}, {1, 4}, {2, 4}, {3, 3}, {4, 2}, {5, 2},
		{6, 3},
	},
}
