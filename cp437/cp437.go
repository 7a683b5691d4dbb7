// Package cp437 maps between unicode runes and code page 437 glyph indices.
// The codes are opaque font-atlas positions; the console core never
// interprets them beyond addressing the atlas.
package cp437

// table maps each of the 256 code page 437 positions to its unicode rune.
// Layout follows the classic IBM PC character ROM.
var table = [256]rune{
	// 0x00-0x1F: control positions render as dingbats
	0x0000, '☺', '☻', '♥', '♦', '♣', '♠', '•',
	'◘', '○', '◙', '♂', '♀', '♪', '♫', '☼',
	'►', '◄', '↕', '‼', '¶', '§', '▬', '↨',
	'↑', '↓', '→', '←', '∟', '↔', '▲', '▼',
	// 0x20-0x7E: ASCII
	' ', '!', '"', '#', '$', '%', '&', '\'',
	'(', ')', '*', '+', ',', '-', '.', '/',
	'0', '1', '2', '3', '4', '5', '6', '7',
	'8', '9', ':', ';', '<', '=', '>', '?',
	'@', 'A', 'B', 'C', 'D', 'E', 'F', 'G',
	'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O',
	'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W',
	'X', 'Y', 'Z', '[', '\\', ']', '^', '_',
	'`', 'a', 'b', 'c', 'd', 'e', 'f', 'g',
	'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o',
	'p', 'q', 'r', 's', 't', 'u', 'v', 'w',
	'x', 'y', 'z', '{', '|', '}', '~', '⌂',
	// 0x80-0x9F: accented latin
	'Ç', 'ü', 'é', 'â', 'ä', 'à', 'å', 'ç',
	'ê', 'ë', 'è', 'ï', 'î', 'ì', 'Ä', 'Å',
	'É', 'æ', 'Æ', 'ô', 'ö', 'ò', 'û', 'ù',
	'ÿ', 'Ö', 'Ü', '¢', '£', '¥', '₧', 'ƒ',
	// 0xA0-0xAF
	'á', 'í', 'ó', 'ú', 'ñ', 'Ñ', 'ª', 'º',
	'¿', '⌐', '¬', '½', '¼', '¡', '«', '»',
	// 0xB0-0xDF: blocks and box drawing
	'░', '▒', '▓', '│', '┤', '╡', '╢', '╖',
	'╕', '╣', '║', '╗', '╝', '╜', '╛', '┐',
	'└', '┴', '┬', '├', '─', '┼', '╞', '╟',
	'╚', '╔', '╩', '╦', '╠', '═', '╬', '╧',
	'╨', '╤', '╥', '╙', '╘', '╒', '╓', '╫',
	'╪', '┘', '┌', '█', '▄', '▌', '▐', '▀',
	// 0xE0-0xFF: greek and math
	'α', 'ß', 'Γ', 'π', 'Σ', 'σ', 'µ', 'τ',
	'Φ', 'Θ', 'Ω', 'δ', '∞', 'φ', 'ε', '∩',
	'≡', '±', '≥', '≤', '⌠', '⌡', '÷', '≈',
	'°', '∙', '·', '√', 'ⁿ', '²', '■', 0x00A0,
}

// reverse maps runes back to their code page position
var reverse map[rune]uint16

func init() {
	reverse = make(map[rune]uint16, 256)
	for code, r := range table {
		if _, exists := reverse[r]; !exists {
			reverse[r] = uint16(code)
		}
	}
}

// ToCP437 converts a rune to its code page 437 position.
// Runes with no code page equivalent map to '?'.
func ToCP437(r rune) uint16 {
	if code, ok := reverse[r]; ok {
		return code
	}
	return uint16('?')
}

// ToRune converts a code page 437 position back to a unicode rune.
// Codes above 255 have no meaning in the code page and map to '?'.
func ToRune(code uint16) rune {
	if code > 255 {
		return '?'
	}
	return table[code]
}

// StringToCP437 encodes a string as a sequence of code page 437 positions,
// one per rune.
func StringToCP437(s string) []uint16 {
	out := make([]uint16, 0, len(s))
	for _, r := range s {
		out = append(out, ToCP437(r))
	}
	return out
}
