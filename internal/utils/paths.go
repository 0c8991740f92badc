package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// fileNameReplacer substitutes filesystem-unsafe characters. Slashes,
// backslashes, colons, and asterisks become dashes; the rest are removed.
// Every replacement is 1:1 with a legal character, so applying the replacer
// twice yields the same string as applying it once.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName replaces filesystem-unsafe characters in a file or
// folder name and trims surrounding whitespace.
func SanitizeFileName(name string) string {
	return strings.TrimSpace(fileNameReplacer.Replace(name))
}

var mediaExtensions = []string{
	".mkv", ".mp4", ".avi", ".mov", ".wmv", ".flv", ".webm", ".m4v", ".mpg", ".mpeg", ".ts",
}

func IsMediaFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, me := range mediaExtensions {
		if ext == me {
			return true
		}
	}
	return false
}

// SidecarPath returns the path of the metadata sidecar the host writes next
// to a media file.
func SidecarPath(mediaPath string) string {
	return mediaPath + ".json"
}

func IsSidecarFile(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".json") && IsMediaFile(strings.TrimSuffix(path, filepath.Ext(path)))
}

func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		if home != "" {
			return strings.Replace(path, "~", home, 1)
		}
	}

	if strings.HasPrefix(path, "$HOME/") {
		home, _ := os.UserHomeDir()
		if home != "" {
			return strings.Replace(path, "$HOME", home, 1)
		}
	}

	return path
}
