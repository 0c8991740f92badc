package models

import "strings"

type Language string

const (
	LanguageEnglish  Language = "english"
	LanguageRomaji   Language = "romaji"
	LanguageJapanese Language = "japanese"
	LanguageUnknown  Language = "unknown"
)

// ParseLanguage normalizes a language name from config or sidecar metadata.
// Unrecognized names map to LanguageUnknown rather than failing; a title in
// an unknown language simply never matches a preference entry.
func ParseLanguage(s string) Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "english", "en", "eng":
		return LanguageEnglish
	case "romaji", "x-jat":
		return LanguageRomaji
	case "japanese", "ja", "jpn":
		return LanguageJapanese
	default:
		return LanguageUnknown
	}
}

type TitleKind string

const (
	TitleKindOfficial TitleKind = "official"
	TitleKindShort    TitleKind = "short"
	TitleKindSynonym  TitleKind = "synonym"
	TitleKindOther    TitleKind = "other"

	// TitleKindAny disables kind filtering during title resolution.
	TitleKindAny TitleKind = ""
)

type Title struct {
	Text     string    `json:"text"`
	Language Language  `json:"language"`
	Kind     TitleKind `json:"kind"`
}
