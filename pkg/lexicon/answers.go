package lexicon

var (
	yesAnswers = map[string]bool{"yes": true, "y": true, "yep": true, "yup": true, "ya": true, "ja": true, "sure": true}
	noAnswers  = map[string]bool{"no": true, "n": true, "none": true, "nope": true, "nein": true, "zero": true, "no more": true}
)

// IsYes reports whether s is one of the accepted affirmative answers.
func IsYes(s string) bool {
	return yesAnswers[Normalize(s)]
}

// IsNo reports whether s is one of the accepted negative answers.
func IsNo(s string) bool {
	return noAnswers[Normalize(s)]
}
