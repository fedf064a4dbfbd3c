package mutate

// Common leet-speak substitutions, keyed by the lowercase letter they replace.
var leetTable = map[rune][]rune{
	'a': {'@', '4'},
	'b': {'8'},
	'c': {'('},
	'e': {'3'},
	'g': {'6', '9'},
	'h': {'#'},
	'i': {'1', '!', '|'},
	'l': {'1'},
	'o': {'0'},
	's': {'$', '5'},
	't': {'7'},
	'z': {'2'},
}

// Common password suffixes.
var commonSuffixes = []string{
	"1", "12", "123", "1234", "12345",
	"!", "!!", "!!!", "@", "#", "$",
	"01", "02", "69", "99", "00",
	"24", "25", "67", // Gen-Z favorites
	"2010", "2011", "2012", "2013", "2014",
	"2015", "2016", "2017", "2018", "2019",
	"2020", "2021", "2022", "2023", "2024",
	"2025", "2026",
}

// Common password prefixes.
var commonPrefixes = []string{
	"!", "@", "#", "1", "the", "my",
}

// QWERTY keyboard-adjacent characters.
// TODO add support for alternate layouts
var keyboardAdjacent = map[rune]string{
	'a': "qwsz", 'b': "vghn", 'c': "xdfv", 'd': "erfcxs",
	'e': "rdsw3", 'f': "rtgvcd", 'g': "tyhbvf", 'h': "yujnbg",
	'i': "ujko8", 'j': "uikmnh", 'k': "iolmj", 'l': "opk",
	'm': "njk", 'n': "bhjm", 'o': "iklp9", 'p': "ol0",
	'q': "wa12", 'r': "edft4", 's': "wedxza", 't': "rfgy5",
	'u': "yhji7", 'v': "cfgb", 'w': "qase2", 'x': "zsdc",
	'y': "tghu6", 'z': "asx",
}
