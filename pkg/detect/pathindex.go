package detect

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
)

// PathIndex lists executable names found in PATH directories. The scan
// runs once and is shared by every component's detection; it is the only
// cached state crossing component boundaries.
type PathIndex struct {
	once  sync.Once
	names []string
}

// NewPathIndex creates an index that scans lazily on first use.
func NewPathIndex() *PathIndex {
	return &PathIndex{}
}

// Names returns the sorted, de-duplicated executable names on PATH.
func (p *PathIndex) Names() ([]string, error) {
	p.once.Do(p.scan)
	return p.names, nil
}

func (p *PathIndex) scan() {
	seen := make(map[string]struct{})
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			if runtime.GOOS == "windows" {
				name = strings.TrimSuffix(strings.ToLower(name), ".exe")
			} else if info, err := entry.Info(); err != nil || info.Mode()&0111 == 0 {
				continue
			}
			seen[name] = struct{}{}
		}
	}

	p.names = make([]string, 0, len(seen))
	for name := range seen {
		p.names = append(p.names, name)
	}
	sort.Strings(p.names)
}
