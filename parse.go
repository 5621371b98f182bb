package daumdic

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/pkg/errors"
)

// Selector table for the dic.daum.net results page, compiled once. These
// class names are the only part of the package coupled to the site's markup.
var (
	selBox          = cascadia.MustCompile(".search_box")
	selWord         = cascadia.MustCompile(".txt_cleansch,.txt_searchword,.txt_hanjaword")
	selLang         = cascadia.MustCompile(".tit_word")
	selPronounce    = cascadia.MustCompile(".sub_read,.txt_pronounce")
	selMeaning      = cascadia.MustCompile(".txt_search")
	selAlternatives = cascadia.MustCompile(".link_speller")
	selArticle      = cascadia.MustCompile("#mArticle")
)

// parseSearch extracts a Search from a results page. Entry boxes missing a
// word or a section heading are skipped. A page with no entries, no spelling
// suggestions and no results wrapper at all is treated as a markup mismatch.
func parseSearch(body []byte) (*Search, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse HTML")
	}

	var words []Word
	doc.FindMatcher(selBox).Each(func(_ int, box *goquery.Selection) {
		text := strings.TrimSpace(box.FindMatcher(selWord).First().Text())
		// The section heading sits outside the box, on its parent card.
		label := strings.TrimSpace(box.Parent().FindMatcher(selLang).First().Text())
		if text == "" || label == "" {
			return
		}

		var meanings []string
		box.FindMatcher(selMeaning).Each(func(_ int, m *goquery.Selection) {
			meanings = append(meanings, strings.TrimSpace(m.Text()))
		})

		words = append(words, Word{
			Text:          text,
			Meanings:      meanings,
			Pronunciation: strings.TrimSpace(box.FindMatcher(selPronounce).First().Text()),
			Lang:          classifyLang(label),
			LangLabel:     label,
		})
	})

	var alternatives []string
	doc.FindMatcher(selAlternatives).Each(func(_ int, a *goquery.Selection) {
		if alt := strings.TrimSpace(a.Text()); alt != "" {
			alternatives = append(alternatives, alt)
		}
	})

	if len(words) == 0 && len(alternatives) == 0 && doc.FindMatcher(selArticle).Length() == 0 {
		return nil, errors.Wrap(ErrMarkup, "no results layout found")
	}

	return &Search{Words: words, Alternatives: alternatives}, nil
}
