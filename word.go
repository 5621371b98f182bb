package daumdic

import "strings"

// Lang classifies which dictionary section an entry came from.
type Lang string

const (
	LangKorean   Lang = "korean"
	LangEnglish  Lang = "english"
	LangJapanese Lang = "japanese"
	LangHanja    Lang = "hanja"
	LangOther    Lang = "other"
)

// classifyLang maps a section heading like "한국어사전" to a Lang. Headings
// for languages without a dedicated variant classify as LangOther, with the
// raw heading kept on the Word.
func classifyLang(label string) Lang {
	switch {
	case strings.HasPrefix(label, "한국"):
		return LangKorean
	case strings.HasPrefix(label, "영"):
		return LangEnglish
	case strings.HasPrefix(label, "일"):
		return LangJapanese
	case strings.HasPrefix(label, "한자"):
		return LangHanja
	default:
		return LangOther
	}
}

// Word is a single dictionary entry from a results page.
type Word struct {
	// The matched word itself.
	Text string
	// Meanings holds one or more meaning strings, in page order.
	Meanings []string
	// Pronunciation is empty when the page shows none.
	Pronunciation string
	Lang          Lang
	// LangLabel is the raw section heading, e.g. "중국어사전".
	LangLabel string
}

// String renders the entry on one line, in the form
// "(label)  word  [pronunciation]  meaning, meaning". The label prefix is
// only shown for LangOther entries.
func (w Word) String() string {
	var sb strings.Builder
	if w.Lang == LangOther && w.LangLabel != "" {
		sb.WriteString("(")
		sb.WriteString(w.LangLabel)
		sb.WriteString(")  ")
	}
	sb.WriteString(w.Text)
	if w.Pronunciation != "" {
		sb.WriteString("  ")
		sb.WriteString(w.Pronunciation)
	}
	if len(w.Meanings) > 0 {
		sb.WriteString("  ")
		sb.WriteString(strings.Join(w.Meanings, ", "))
	}
	return sb.String()
}

// Search is the outcome of one dictionary lookup.
type Search struct {
	// Words holds the matched entries, possibly empty.
	Words []Word
	// Alternatives holds spelling suggestions the site offers when there
	// is no exact match.
	Alternatives []string
}

// String renders all matched entries, one per line.
func (s *Search) String() string {
	lines := make([]string, len(s.Words))
	for i, w := range s.Words {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
