package scalehelper

import "strings"

// cardNotes turns spoken notes into compact card text:
// "c sharp, d flat" becomes "C#, Db".
func cardNotes(speech string) string {
	s := strings.ReplaceAll(speech, " sharp", "#")
	s = strings.ReplaceAll(s, "ay", "a")
	s = strings.ToUpper(s)
	return strings.ReplaceAll(s, " FLAT", "b")
}
