package providers

import "strings"

// wordBreaks lists raw-name fragments that read better with explicit
// spelling than a plain camel-case split.
var wordBreaks = strings.NewReplacer(
	"CPU", " CPU",
	"IOPS", " IOPS",
)

// splitCamel renders a provider metric name ("FreeStorageSpace",
// "ApproximateAgeOfOldestMessage") as words for display.
func splitCamel(raw string) string {
	pre := wordBreaks.Replace(raw)

	var b strings.Builder
	b.Grow(len(pre) + 8)
	runes := []rune(pre)
	for i, r := range runes {
		if i > 0 && r >= 'A' && r <= 'Z' {
			prev := runes[i-1]
			if prev >= 'a' && prev <= 'z' {
				b.WriteRune(' ')
			} else if prev >= 'A' && prev <= 'Z' && i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z' {
				b.WriteRune(' ')
			}
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
