package sanitizer

import "regexp"

// threatDetectors is the fixed, ordered set of injection markers scanned
// before any business pattern runs. The scan is structural only; input is
// never rewritten.
var threatDetectors = []struct {
	name string
	re   *regexp.Regexp
}{
	{"script-tag", regexp.MustCompile(`(?i)<script\b`)},
	{"javascript-uri", regexp.MustCompile(`(?i)javascript\s*:`)},
	{"vbscript-uri", regexp.MustCompile(`(?i)vbscript\s*:`)},
	{"event-handler", regexp.MustCompile(`(?i)\bon\w+\s*=`)},
	{"eval-call", regexp.MustCompile(`(?i)\beval\s*\(`)},
	{"document-access", regexp.MustCompile(`(?i)\bdocument\s*\.`)},
	{"window-access", regexp.MustCompile(`(?i)\bwindow\s*\.`)},
	{"sql-union-select", regexp.MustCompile(`(?i)\bunion\s+select\b`)},
	{"sql-drop-table", regexp.MustCompile(`(?i)\bdrop\s+table\b`)},
}

// ContainsThreat reports whether s carries any known injection marker.
// The first matching detector short-circuits the scan.
func ContainsThreat(s string) bool {
	for _, d := range threatDetectors {
		if d.re.MatchString(s) {
			return true
		}
	}
	return false
}

// Threats returns the names of every detector that fires on s, in scan
// order. The result is empty iff ContainsThreat(s) is false.
func Threats(s string) []string {
	var names []string
	for _, d := range threatDetectors {
		if d.re.MatchString(s) {
			names = append(names, d.name)
		}
	}
	return names
}
