package models

type FolderType string

const (
	FolderTypeDestination FolderType = "destination"
	FolderTypeSource      FolderType = "source"
	FolderTypeBoth        FolderType = "both"
)

// DestinationFolder is one of the host's configured storage locations.
// Folders are matched by case-insensitive name during routing.
type DestinationFolder struct {
	ID   int        `json:"id"`
	Name string     `json:"name"`
	Path string     `json:"path"`
	Type FolderType `json:"type"`
}

// RelocationContext is the immutable input envelope for a single planning
// invocation. Episodes and Series are ordered; only the first entry of each
// participates in naming and routing.
type RelocationContext struct {
	File             FileInfo
	Episodes         []EpisodeInfo
	Series           []SeriesInfo
	AvailableFolders []DestinationFolder
}

func (c *RelocationContext) FirstSeries() *SeriesInfo {
	if len(c.Series) == 0 {
		return nil
	}
	return &c.Series[0]
}

func (c *RelocationContext) FirstEpisode() *EpisodeInfo {
	if len(c.Episodes) == 0 {
		return nil
	}
	return &c.Episodes[0]
}

// RelocationResult is a successful plan: the new file name plus the folder
// and subfolder the host should move the file into. The engine never moves
// anything itself.
type RelocationResult struct {
	FileName    string
	Destination DestinationFolder
	Subfolder   string
}
