package models

import "path/filepath"

type SeriesType string

const (
	SeriesTypeSeries SeriesType = "series"
	SeriesTypeMovie  SeriesType = "movie"
	SeriesTypeOVA    SeriesType = "ova"
	SeriesTypeWeb    SeriesType = "web"
	SeriesTypeOther  SeriesType = "other"
)

type EpisodeType string

const (
	EpisodeTypeEpisode EpisodeType = "episode"
	EpisodeTypeCredits EpisodeType = "credits"
	EpisodeTypeSpecial EpisodeType = "special"
	EpisodeTypeTrailer EpisodeType = "trailer"
	EpisodeTypeParody  EpisodeType = "parody"
	EpisodeTypeOther   EpisodeType = "other"
)

// EpisodeCounts carries the per-category episode totals for a series. The
// totals drive zero-padding width when formatting episode labels.
type EpisodeCounts struct {
	Episodes int `json:"episodes"`
	Credits  int `json:"credits"`
	Specials int `json:"specials"`
	Trailers int `json:"trailers"`
	Parodies int `json:"parodies"`
	Others   int `json:"others"`
}

// For returns the count for an episode category. ok is false when the
// category is outside the known enum.
func (c EpisodeCounts) For(t EpisodeType) (count int, ok bool) {
	switch t {
	case EpisodeTypeEpisode:
		return c.Episodes, true
	case EpisodeTypeCredits:
		return c.Credits, true
	case EpisodeTypeSpecial:
		return c.Specials, true
	case EpisodeTypeTrailer:
		return c.Trailers, true
	case EpisodeTypeParody:
		return c.Parodies, true
	case EpisodeTypeOther:
		return c.Others, true
	default:
		return 0, false
	}
}

type SeriesInfo struct {
	Titles         []Title       `json:"titles"`
	PreferredTitle string        `json:"preferred_title"`
	Type           SeriesType    `json:"type"`
	Restricted     bool          `json:"restricted"`
	EpisodeCounts  EpisodeCounts `json:"episode_counts"`
}

func (s *SeriesInfo) IsMovie() bool {
	return s.Type == SeriesTypeMovie
}

type EpisodeInfo struct {
	Titles []Title     `json:"titles"`
	Type   EpisodeType `json:"type"`
	Number int         `json:"number"`
}

type TextStream struct {
	LanguageCode string `json:"language_code"`
}

type VideoStream struct {
	BitDepth  int    `json:"bit_depth"`
	CodecName string `json:"codec_name"`
}

type StreamInfo struct {
	TextStreams []TextStream `json:"text_streams"`
	Video       VideoStream  `json:"video"`
}

type FileInfo struct {
	FileName     string     `json:"file_name"`
	Streams      StreamInfo `json:"streams"`
	ReleaseGroup string     `json:"release_group"`
}

// Extension returns the file extension including the leading dot, or the
// empty string when the source file name carries none.
func (f *FileInfo) Extension() string {
	return filepath.Ext(f.FileName)
}
