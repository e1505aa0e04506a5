package lexer

type runeRange struct {
	min rune
	max rune
}

func isRuneInRange(char rune, ranges ...runeRange) bool {
	for _, ran := range ranges {
		if char >= ran.min && char <= ran.max {
			return true
		}
	}
	return false
}

func IsDigit(char rune) bool { return isRuneInRange(char, runeRange{min: '0', max: '9'}) }
func IsLetter(char rune) bool {
	return isRuneInRange(
		char,
		runeRange{min: 'A', max: 'Z'},
		runeRange{min: 'a', max: 'z'},
		runeRange{min: '_', max: '_'},
	)
}

// IsIdent reports whether test could be lexed as a single identifier token.
func IsIdent(test string) bool {
	if test == "" || test == "def" {
		return false
	}
	for idx, char := range test {
		if !IsLetter(char) && (idx == 0 || !IsDigit(char)) {
			return false
		}
	}
	return true
}
