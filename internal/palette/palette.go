// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/palette/palette.go
// Summary: Pure color-table lookups: 8-color, 8-bright, and 256-color to RGB.
// Usage: Consumed by the ansiblock parser when decoding SGR sequences and
// by the renderer when downgrading truecolor for palette-limited backends.
// Notes: Tables are literal, not computed, matching the source scheme.

package palette

// Color is an RGB triple. The zero value is black, which is also the
// implementation's terminal-default foreground/background.
type Color struct {
	R, G, B uint8
}

// from8Table is the standard 8-color ANSI palette (Ubuntu terminal
// scheme), indexed 0-7.
var from8Table = [8]Color{
	{R: 46, G: 52, B: 54},
	{R: 204, G: 0, B: 0},
	{R: 78, G: 154, B: 6},
	{R: 196, G: 160, B: 0},
	{R: 52, G: 101, B: 164},
	{R: 117, G: 80, B: 123},
	{R: 6, G: 152, B: 154},
	{R: 211, G: 215, B: 207},
}

// from8BrightTable is the bright variant of the standard 8-color palette,
// indexed 0-7.
var from8BrightTable = [8]Color{
	{R: 85, G: 85, B: 83},
	{R: 239, G: 41, B: 41},
	{R: 138, G: 226, B: 52},
	{R: 252, G: 233, B: 79},
	{R: 114, G: 159, B: 207},
	{R: 173, G: 127, B: 168},
	{R: 52, G: 226, B: 226},
	{R: 238, G: 238, B: 236},
}

// from256Table is the standard xterm 256-color palette: 0-15 match the
// two tables above, 16-231 are the 6x6x6 color cube, 232-255 are the
// grayscale ramp.
var from256Table = [256]Color{
	0:  from8Table[0],
	1:  from8Table[1],
	2:  from8Table[2],
	3:  from8Table[3],
	4:  from8Table[4],
	5:  from8Table[5],
	6:  from8Table[6],
	7:  from8Table[7],
	8:  from8BrightTable[0],
	9:  from8BrightTable[1],
	10: from8BrightTable[2],
	11: from8BrightTable[3],
	12: from8BrightTable[4],
	13: from8BrightTable[5],
	14: from8BrightTable[6],
	15: from8BrightTable[7],
	16: {R: 0, G: 0, B: 0},
	17: {R: 0, G: 0, B: 95},
	18: {R: 0, G: 0, B: 135},
	19: {R: 0, G: 0, B: 175},
	20: {R: 0, G: 0, B: 215},
	21: {R: 0, G: 0, B: 255},
	22: {R: 0, G: 95, B: 0},
	23: {R: 0, G: 95, B: 95},
	24: {R: 0, G: 95, B: 135},
	25: {R: 0, G: 95, B: 175},
	26: {R: 0, G: 95, B: 215},
	27: {R: 0, G: 95, B: 255},
	28: {R: 0, G: 135, B: 0},
	29: {R: 0, G: 135, B: 95},
	30: {R: 0, G: 135, B: 135},
	31: {R: 0, G: 135, B: 175},
	32: {R: 0, G: 135, B: 215},
	33: {R: 0, G: 135, B: 255},
	34: {R: 0, G: 175, B: 0},
	35: {R: 0, G: 175, B: 95},
	36: {R: 0, G: 175, B: 135},
	37: {R: 0, G: 175, B: 175},
	38: {R: 0, G: 175, B: 215},
	39: {R: 0, G: 175, B: 255},
	40: {R: 0, G: 215, B: 0},
	41: {R: 0, G: 215, B: 95},
	42: {R: 0, G: 215, B: 135},
	43: {R: 0, G: 215, B: 175},
	44: {R: 0, G: 215, B: 215},
	45: {R: 0, G: 215, B: 255},
	46: {R: 0, G: 255, B: 0},
	47: {R: 0, G: 255, B: 95},
	48: {R: 0, G: 255, B: 135},
	49: {R: 0, G: 255, B: 175},
	50: {R: 0, G: 255, B: 215},
	51: {R: 0, G: 255, B: 255},
	52: {R: 95, G: 0, B: 0},
	53: {R: 95, G: 0, B: 95},
	54: {R: 95, G: 0, B: 135},
	55: {R: 95, G: 0, B: 175},
	56: {R: 95, G: 0, B: 215},
	57: {R: 95, G: 0, B: 255},
	58: {R: 95, G: 95, B: 0},
	59: {R: 95, G: 95, B: 95},
	60: {R: 95, G: 95, B: 135},
	61: {R: 95, G: 95, B: 175},
	62: {R: 95, G: 95, B: 215},
	63: {R: 95, G: 95, B: 255},
	64: {R: 95, G: 135, B: 0},
	65: {R: 95, G: 135, B: 95},
	66: {R: 95, G: 135, B: 135},
	67: {R: 95, G: 135, B: 175},
	68: {R: 95, G: 135, B: 215},
	69: {R: 95, G: 135, B: 255},
	70: {R: 95, G: 175, B: 0},
	71: {R: 95, G: 175, B: 95},
	72: {R: 95, G: 175, B: 135},
	73: {R: 95, G: 175, B: 175},
	74: {R: 95, G: 175, B: 215},
	75: {R: 95, G: 175, B: 255},
	76: {R: 95, G: 215, B: 0},
	77: {R: 95, G: 215, B: 95},
	78: {R: 95, G: 215, B: 135},
	79: {R: 95, G: 215, B: 175},
	80: {R: 95, G: 215, B: 215},
	81: {R: 95, G: 215, B: 255},
	82: {R: 95, G: 255, B: 0},
	83: {R: 95, G: 255, B: 95},
	84: {R: 95, G: 255, B: 135},
	85: {R: 95, G: 255, B: 175},
	86: {R: 95, G: 255, B: 215},
	87: {R: 95, G: 255, B: 255},
	88: {R: 135, G: 0, B: 0},
	89: {R: 135, G: 0, B: 95},
	90: {R: 135, G: 0, B: 135},
	91: {R: 135, G: 0, B: 175},
	92: {R: 135, G: 0, B: 215},
	93: {R: 135, G: 0, B: 255},
	94: {R: 135, G: 95, B: 0},
	95: {R: 135, G: 95, B: 95},
	96: {R: 135, G: 95, B: 135},
	97: {R: 135, G: 95, B: 175},
	98: {R: 135, G: 95, B: 215},
	99: {R: 135, G: 95, B: 255},
	100: {R: 135, G: 135, B: 0},
	101: {R: 135, G: 135, B: 95},
	102: {R: 135, G: 135, B: 135},
	103: {R: 135, G: 135, B: 175},
	104: {R: 135, G: 135, B: 215},
	105: {R: 135, G: 135, B: 255},
	106: {R: 135, G: 175, B: 0},
	107: {R: 135, G: 175, B: 95},
	108: {R: 135, G: 175, B: 135},
	109: {R: 135, G: 175, B: 175},
	110: {R: 135, G: 175, B: 215},
	111: {R: 135, G: 175, B: 255},
	112: {R: 135, G: 215, B: 0},
	113: {R: 135, G: 215, B: 95},
	114: {R: 135, G: 215, B: 135},
	115: {R: 135, G: 215, B: 175},
	116: {R: 135, G: 215, B: 215},
	117: {R: 135, G: 215, B: 255},
	118: {R: 135, G: 255, B: 0},
	119: {R: 135, G: 255, B: 95},
	120: {R: 135, G: 255, B: 135},
	121: {R: 135, G: 255, B: 175},
	122: {R: 135, G: 255, B: 215},
	123: {R: 135, G: 255, B: 255},
	124: {R: 175, G: 0, B: 0},
	125: {R: 175, G: 0, B: 95},
	126: {R: 175, G: 0, B: 135},
	127: {R: 175, G: 0, B: 175},
	128: {R: 175, G: 0, B: 215},
	129: {R: 175, G: 0, B: 255},
	130: {R: 175, G: 95, B: 0},
	131: {R: 175, G: 95, B: 95},
	132: {R: 175, G: 95, B: 135},
	133: {R: 175, G: 95, B: 175},
	134: {R: 175, G: 95, B: 215},
	135: {R: 175, G: 95, B: 255},
	136: {R: 175, G: 135, B: 0},
	137: {R: 175, G: 135, B: 95},
	138: {R: 175, G: 135, B: 135},
	139: {R: 175, G: 135, B: 175},
	140: {R: 175, G: 135, B: 215},
	141: {R: 175, G: 135, B: 255},
	142: {R: 175, G: 175, B: 0},
	143: {R: 175, G: 175, B: 95},
	144: {R: 175, G: 175, B: 135},
	145: {R: 175, G: 175, B: 175},
	146: {R: 175, G: 175, B: 215},
	147: {R: 175, G: 175, B: 255},
	148: {R: 175, G: 215, B: 0},
	149: {R: 175, G: 215, B: 95},
	150: {R: 175, G: 215, B: 135},
	151: {R: 175, G: 215, B: 175},
	152: {R: 175, G: 215, B: 215},
	153: {R: 175, G: 215, B: 255},
	154: {R: 175, G: 255, B: 0},
	155: {R: 175, G: 255, B: 95},
	156: {R: 175, G: 255, B: 135},
	157: {R: 175, G: 255, B: 175},
	158: {R: 175, G: 255, B: 215},
	159: {R: 175, G: 255, B: 255},
	160: {R: 215, G: 0, B: 0},
	161: {R: 215, G: 0, B: 95},
	162: {R: 215, G: 0, B: 135},
	163: {R: 215, G: 0, B: 175},
	164: {R: 215, G: 0, B: 215},
	165: {R: 215, G: 0, B: 255},
	166: {R: 215, G: 95, B: 0},
	167: {R: 215, G: 95, B: 95},
	168: {R: 215, G: 95, B: 135},
	169: {R: 215, G: 95, B: 175},
	170: {R: 215, G: 95, B: 215},
	171: {R: 215, G: 95, B: 255},
	172: {R: 215, G: 135, B: 0},
	173: {R: 215, G: 135, B: 95},
	174: {R: 215, G: 135, B: 135},
	175: {R: 215, G: 135, B: 175},
	176: {R: 215, G: 135, B: 215},
	177: {R: 215, G: 135, B: 255},
	178: {R: 215, G: 175, B: 0},
	179: {R: 215, G: 175, B: 95},
	180: {R: 215, G: 175, B: 135},
	181: {R: 215, G: 175, B: 175},
	182: {R: 215, G: 175, B: 215},
	183: {R: 215, G: 175, B: 255},
	184: {R: 215, G: 215, B: 0},
	185: {R: 215, G: 215, B: 95},
	186: {R: 215, G: 215, B: 135},
	187: {R: 215, G: 215, B: 175},
	188: {R: 215, G: 215, B: 215},
	189: {R: 215, G: 215, B: 255},
	190: {R: 215, G: 255, B: 0},
	191: {R: 215, G: 255, B: 95},
	192: {R: 215, G: 255, B: 135},
	193: {R: 215, G: 255, B: 175},
	194: {R: 215, G: 255, B: 215},
	195: {R: 215, G: 255, B: 255},
	196: {R: 255, G: 0, B: 0},
	197: {R: 255, G: 0, B: 95},
	198: {R: 255, G: 0, B: 135},
	199: {R: 255, G: 0, B: 175},
	200: {R: 255, G: 0, B: 215},
	201: {R: 255, G: 0, B: 255},
	202: {R: 255, G: 95, B: 0},
	203: {R: 255, G: 95, B: 95},
	204: {R: 255, G: 95, B: 135},
	205: {R: 255, G: 95, B: 175},
	206: {R: 255, G: 95, B: 215},
	207: {R: 255, G: 95, B: 255},
	208: {R: 255, G: 135, B: 0},
	209: {R: 255, G: 135, B: 95},
	210: {R: 255, G: 135, B: 135},
	211: {R: 255, G: 135, B: 175},
	212: {R: 255, G: 135, B: 215},
	213: {R: 255, G: 135, B: 255},
	214: {R: 255, G: 175, B: 0},
	215: {R: 255, G: 175, B: 95},
	216: {R: 255, G: 175, B: 135},
	217: {R: 255, G: 175, B: 175},
	218: {R: 255, G: 175, B: 215},
	219: {R: 255, G: 175, B: 255},
	220: {R: 255, G: 215, B: 0},
	221: {R: 255, G: 215, B: 95},
	222: {R: 255, G: 215, B: 135},
	223: {R: 255, G: 215, B: 175},
	224: {R: 255, G: 215, B: 215},
	225: {R: 255, G: 215, B: 255},
	226: {R: 255, G: 255, B: 0},
	227: {R: 255, G: 255, B: 95},
	228: {R: 255, G: 255, B: 135},
	229: {R: 255, G: 255, B: 175},
	230: {R: 255, G: 255, B: 215},
	231: {R: 255, G: 255, B: 255},
	232: {R: 8, G: 8, B: 8},
	233: {R: 18, G: 18, B: 18},
	234: {R: 28, G: 28, B: 28},
	235: {R: 38, G: 38, B: 38},
	236: {R: 48, G: 48, B: 48},
	237: {R: 58, G: 58, B: 58},
	238: {R: 68, G: 68, B: 68},
	239: {R: 78, G: 78, B: 78},
	240: {R: 88, G: 88, B: 88},
	241: {R: 98, G: 98, B: 98},
	242: {R: 108, G: 108, B: 108},
	243: {R: 118, G: 118, B: 118},
	244: {R: 128, G: 128, B: 128},
	245: {R: 138, G: 138, B: 138},
	246: {R: 148, G: 148, B: 148},
	247: {R: 158, G: 158, B: 158},
	248: {R: 168, G: 168, B: 168},
	249: {R: 178, G: 178, B: 178},
	250: {R: 188, G: 188, B: 188},
	251: {R: 198, G: 198, B: 198},
	252: {R: 208, G: 208, B: 208},
	253: {R: 218, G: 218, B: 218},
	254: {R: 228, G: 228, B: 228},
	255: {R: 238, G: 238, B: 238},
}

// From8 maps a standard 3-bit color index (0-7) to RGB. Values outside
// the range clamp to the last entry, matching the source's default case.
func From8(val int) Color {
	if val < 0 || val >= len(from8Table) {
		return from8Table[len(from8Table)-1]
	}
	return from8Table[val]
}

// From8Bright maps a bright 3-bit color index (0-7) to RGB.
func From8Bright(val int) Color {
	if val < 0 || val >= len(from8BrightTable) {
		return from8BrightTable[len(from8BrightTable)-1]
	}
	return from8BrightTable[val]
}

// From256 maps a 256-color palette index to RGB. Values outside 0-255
// clamp to the nearest valid endpoint.
func From256(val int) Color {
	if val < 0 {
		val = 0
	}
	if val > 255 {
		val = 255
	}
	return from256Table[val]
}
