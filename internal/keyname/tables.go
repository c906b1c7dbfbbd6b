package keyname

// SDL2 keycodes for keys without a printable character carry the scancode
// with bit 30 set.
const sdlScancodeMask = 1 << 30

func sdlScancode(sc Code) Code { return sc | sdlScancodeMask }

var sdlLabels = map[Code]string{
	'\r': "Return",
	27:   "Esc",
	'\b': "Backspace",
	'\t': "Tab",
	' ':  "Space",
	127:  "Delete",

	sdlScancode(57): "CapsLock",
	sdlScancode(58): "F1",
	sdlScancode(59): "F2",
	sdlScancode(60): "F3",
	sdlScancode(61): "F4",
	sdlScancode(62): "F5",
	sdlScancode(63): "F6",
	sdlScancode(64): "F7",
	sdlScancode(65): "F8",
	sdlScancode(66): "F9",
	sdlScancode(67): "F10",
	sdlScancode(68): "F11",
	sdlScancode(69): "F12",
	sdlScancode(70): "PrintScreen",
	sdlScancode(71): "ScrollLock",
	sdlScancode(72): "Pause",
	sdlScancode(73): "Insert",
	sdlScancode(74): "Home",
	sdlScancode(75): "PgUp",
	sdlScancode(77): "End",
	sdlScancode(78): "PgDn",
	sdlScancode(79): "Right",
	sdlScancode(80): "Left",
	sdlScancode(81): "Down",
	sdlScancode(82): "Up",
	sdlScancode(83): "NumLock",
	sdlScancode(88): "Enter",

	sdlScancode(101): "Menu",

	sdlScancode(224): "Ctrl",
	sdlScancode(225): "Shift",
	sdlScancode(226): "Alt",
	sdlScancode(227): "Super",
	sdlScancode(228): "Ctrl",
	sdlScancode(229): "Shift",
	sdlScancode(230): "Alt",
	sdlScancode(231): "Super",
}

// pcLabels is the XT set-1 block shared by evdev and libuiohook codes.
var pcLabels = map[Code]string{
	1:  "Esc",
	2:  "1",
	3:  "2",
	4:  "3",
	5:  "4",
	6:  "5",
	7:  "6",
	8:  "7",
	9:  "8",
	10: "9",
	11: "0",
	12: "-",
	13: "=",
	14: "Backspace",
	15: "Tab",
	16: "Q",
	17: "W",
	18: "E",
	19: "R",
	20: "T",
	21: "Y",
	22: "U",
	23: "I",
	24: "O",
	25: "P",
	26: "[",
	27: "]",
	28: "Return",
	29: "Ctrl",
	30: "A",
	31: "S",
	32: "D",
	33: "F",
	34: "G",
	35: "H",
	36: "J",
	37: "K",
	38: "L",
	39: ";",
	40: "'",
	41: "`",
	42: "Shift",
	43: "\\",
	44: "Z",
	45: "X",
	46: "C",
	47: "V",
	48: "B",
	49: "N",
	50: "M",
	51: ",",
	52: ".",
	53: "/",
	54: "Shift",
	56: "Alt",
	57: "Space",
	58: "CapsLock",
	59: "F1",
	60: "F2",
	61: "F3",
	62: "F4",
	63: "F5",
	64: "F6",
	65: "F7",
	66: "F8",
	67: "F9",
	68: "F10",
	69: "NumLock",
	70: "ScrollLock",
	87: "F11",
	88: "F12",
}

var evdevExtra = map[Code]string{
	55:  "KP*",
	71:  "KP7",
	72:  "KP8",
	73:  "KP9",
	74:  "KP-",
	75:  "KP4",
	76:  "KP5",
	77:  "KP6",
	78:  "KP+",
	79:  "KP1",
	80:  "KP2",
	81:  "KP3",
	82:  "KP0",
	83:  "KP.",
	96:  "Enter",
	97:  "Ctrl",
	98:  "KP/",
	99:  "PrintScreen",
	100: "Alt",
	102: "Home",
	103: "Up",
	104: "PgUp",
	105: "Left",
	106: "Right",
	107: "End",
	108: "Down",
	109: "PgDn",
	110: "Insert",
	111: "Delete",
	119: "Pause",
	125: "Super",
	126: "Super",
	127: "Menu",
}

// libuiohook marks extended keys with a 0x0E00 or 0xE000 prefix.
var uiohookExtra = map[Code]string{
	0x0037: "KP*",
	0x0E1C: "Enter",
	0x0E1D: "Ctrl",
	0x0E35: "KP/",
	0x0E37: "PrintScreen",
	0x0E38: "Alt",
	0x0E45: "Pause",
	0x0E47: "Home",
	0x0E49: "PgUp",
	0x0E4F: "End",
	0x0E51: "PgDn",
	0x0E52: "Insert",
	0x0E53: "Delete",
	0x0E5B: "Super",
	0x0E5C: "Super",
	0x0E5D: "Menu",
	0xE048: "Up",
	0xE04B: "Left",
	0xE04D: "Right",
	0xE050: "Down",
}
