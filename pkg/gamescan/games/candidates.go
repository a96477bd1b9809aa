package games

import (
	"os"
	"path/filepath"
	"strings"
)

// Labels for candidates that are a single game rather than a library folder.
const (
	LabelMinecraft = "Minecraft"
)

const (
	ubisoftGamesDir  = `C:\Program Files (x86)\Ubisoft\Ubisoft Game Launcher\games`
	programFilesX86  = `C:\Program Files (x86)`
	steamCommonWin   = `${ProgramFiles(x86)}\Steam\steamapps\common`
	wineUbisoftGames = "drive_c/Program Files (x86)/Ubisoft/Ubisoft Game Launcher/games"
)

// Candidate is a filesystem location checked for installed games.
type Candidate struct {
	// Path is the directory to check.
	Path string

	// Label, when set, is reported as the game name if Path exists.
	// When empty, every immediate subdirectory of Path is a game.
	Label string
}

// DefaultCandidates returns the well-known Minecraft, Ubisoft Connect and
// Steam locations for goos. home is the user's home directory and getenv
// resolves environment variables.
func DefaultCandidates(goos, home string, getenv func(string) string) []Candidate {
	switch goos {
	case "windows":
		steam := os.Expand(steamCommonWin, func(key string) string {
			if v := getenv(key); v != "" {
				return v
			}
			if key == "ProgramFiles(x86)" {
				return programFilesX86
			}
			return ""
		})
		return []Candidate{
			{Path: windowsJoin(home, "AppData", "Roaming", ".minecraft"), Label: LabelMinecraft},
			{Path: ubisoftGamesDir},
			{Path: steam},
		}

	case "darwin":
		support := filepath.Join(home, "Library", "Application Support")
		return []Candidate{
			{Path: filepath.Join(support, "minecraft"), Label: LabelMinecraft},
			{Path: filepath.Join(winePrefix(home, getenv), filepath.FromSlash(wineUbisoftGames))},
			{Path: filepath.Join(support, "Steam", "steamapps", "common")},
		}

	default:
		dataHome := getenv("XDG_DATA_HOME")
		if dataHome == "" {
			dataHome = filepath.Join(home, ".local", "share")
		}
		return []Candidate{
			{Path: filepath.Join(home, ".minecraft"), Label: LabelMinecraft},
			{Path: filepath.Join(winePrefix(home, getenv), filepath.FromSlash(wineUbisoftGames))},
			{Path: filepath.Join(dataHome, "Steam", "steamapps", "common")},
		}
	}
}

// winePrefix honours WINEPREFIX, defaulting to ~/.wine.
func winePrefix(home string, getenv func(string) string) string {
	if prefix := getenv("WINEPREFIX"); prefix != "" {
		return prefix
	}
	return filepath.Join(home, ".wine")
}

// windowsJoin joins with backslashes so Windows paths are built the same
// way regardless of the host running the code.
func windowsJoin(elem ...string) string {
	parts := make([]string, 0, len(elem))
	for _, e := range elem {
		if e = strings.TrimRight(e, `\/`); e != "" {
			parts = append(parts, e)
		}
	}
	return strings.Join(parts, `\`)
}
