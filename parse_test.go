package daumdic

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func loadFixture(t *testing.T, name string) []byte {
	t.Helper()

	body, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("failed to read fixture %s: %v", name, err)
	}

	return body
}

func TestParseSearch(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
		want    Search
	}{
		{
			name:    "korean",
			fixture: "korean.html",
			want: Search{
				Words: []Word{
					{
						Text:          "독수리",
						Meanings:      []string{"수릿과에 속한 큰 새"},
						Pronunciation: "[-쑤-]",
						Lang:          LangKorean,
						LangLabel:     "한국어사전",
					},
				},
			},
		},
		{
			name:    "english with a second section",
			fixture: "english.html",
			want: Search{
				Words: []Word{
					{
						Text:          "resist",
						Meanings:      []string{"저항하다", "반대하다", "참다", "저지하다"},
						Pronunciation: "[rizíst]",
						Lang:          LangEnglish,
						LangLabel:     "영어사전",
					},
					{
						Text:      "레지스트",
						Meanings:  []string{"내식성 피막"},
						Lang:      LangKorean,
						LangLabel: "한국어사전",
					},
				},
			},
		},
		{
			name:    "japanese without pronunciation",
			fixture: "japanese.html",
			want: Search{
				Words: []Word{
					{
						Text:      "ざつおん",
						Meanings:  []string{"잡음", "소음"},
						Lang:      LangJapanese,
						LangLabel: "일본어사전",
					},
				},
			},
		},
		{
			name:    "hanja",
			fixture: "hanja.html",
			want: Search{
				Words: []Word{
					{
						Text:          "方",
						Meanings:      []string{"모, 네모", "방위, 방향"},
						Pronunciation: "모 방",
						Lang:          LangHanja,
						LangLabel:     "한자사전",
					},
				},
			},
		},
		{
			name:    "chinese classifies as other",
			fixture: "chinese.html",
			want: Search{
				Words: []Word{
					{
						Text:          "加油站",
						Meanings:      []string{"주유소"},
						Pronunciation: "[jiāyóuzhàn]",
						Lang:          LangOther,
						LangLabel:     "중국어사전",
					},
				},
			},
		},
		{
			name:    "alternatives only",
			fixture: "alternatives.html",
			want: Search{
				Alternatives: []string{"resist", "resistant", "resistance"},
			},
		},
		{
			name:    "no results",
			fixture: "noresult.html",
			want:    Search{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := parseSearch(loadFixture(t, test.fixture))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !reflect.DeepEqual(got.Words, test.want.Words) {
				t.Errorf("unexpected words:\ngot  %+v\nwant %+v", got.Words, test.want.Words)
			}
			if !reflect.DeepEqual(got.Alternatives, test.want.Alternatives) {
				t.Errorf("unexpected alternatives:\ngot  %v\nwant %v", got.Alternatives, test.want.Alternatives)
			}
		})
	}
}

func TestParseSearchUnknownMarkup(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{
			name: "unrelated page",
			body: loadFixture(t, "malformed.html"),
		},
		{
			name: "empty document",
			body: []byte(""),
		},
		{
			name: "not html at all",
			body: []byte(`{"error": "rate limited"}`),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			search, err := parseSearch(test.body)
			if err == nil {
				t.Fatalf("expected markup error, got %+v", search)
			}
			if !errors.Is(err, ErrMarkup) {
				t.Errorf("expected ErrMarkup, got %v", err)
			}
		})
	}
}
