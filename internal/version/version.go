package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Заполняются через -ldflags "-X .../internal/version.BuildDate=2026-03-01 ..."
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
)

// buildEpoch - день, от которого считается номер сборки
var buildEpoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// VersionInfo - метаданные сборки
type VersionInfo struct {
	BuildID    int
	BuildDate  string
	Commit     string
	Branch     string
	GoVersion  string
	Modified   bool // собрано из грязного дерева
	Calculated bool
	Error      string
}

// CalculateBuildID - номер сборки как число дней от buildEpoch
func CalculateBuildID(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("build date is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid build date %q: %w", date, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("build date %s is before epoch", date)
	}

	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Info собирает метаданные: сначала ldflags, недостающее - из debug.BuildInfo
func Info() VersionInfo {
	info := VersionInfo{
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Branch:    BuildBranch,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fillFromBuildInfo(&info, bi)
	}

	id, err := CalculateBuildID(info.BuildDate)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.BuildID = id
	info.Calculated = true
	return info
}

func fillFromBuildInfo(info *VersionInfo, bi *debug.BuildInfo) {
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = shortRevision(s.Value)
			}
		case "vcs.time":
			if info.BuildDate == "" && len(s.Value) >= 10 {
				info.BuildDate = s.Value[:10]
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}

// String - строка для лога при старте
func String() string {
	info := Info()

	commit := coalesce(info.Commit, "unknown")
	if info.Modified {
		commit += "+dirty"
	}
	if !info.Calculated {
		return fmt.Sprintf("Build unknown (%s) commit[%s]", info.Error, commit)
	}
	return fmt.Sprintf(
		"Build %d (%s) commit[%s] branch[%s] go[%s]",
		info.BuildID,
		info.BuildDate,
		commit,
		coalesce(info.Branch, "unknown"),
		coalesce(info.GoVersion, "unknown"),
	)
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
