package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryFS implements types.FS with in-memory storage, including symlink
// nodes, so reconciliation passes can run against fixture trees without
// touching the real filesystem.
type MemoryFS struct {
	mu   sync.RWMutex
	root *fileNode

	// Error injection
	hideErr error

	hidden map[string]bool
}

// fileNode represents a file, directory, or symlink in memory
type fileNode struct {
	name     string
	mode     fs.FileMode
	modTime  time.Time
	content  []byte
	isDir    bool
	isLink   bool
	linkDest string
	children map[string]*fileNode
}

// NewMemoryFS creates a new in-memory filesystem with an empty root.
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		root: &fileNode{
			name:     "/",
			mode:     0755 | fs.ModeDir,
			modTime:  time.Now(),
			isDir:    true,
			children: make(map[string]*fileNode),
		},
		hidden: make(map[string]bool),
	}
}

const maxLinkDepth = 16

func split(path string) []string {
	path = filepath.ToSlash(filepath.Clean(path))
	path = strings.TrimPrefix(path, "/")
	if path == "" || path == "." {
		return nil
	}
	return strings.Split(path, "/")
}

// resolve walks to the node at path. Intermediate symlinks are always
// followed; the final component is followed only when followFinal is set.
func (m *MemoryFS) resolve(path string, followFinal bool, depth int) (*fileNode, error) {
	if depth > maxLinkDepth {
		return nil, &fs.PathError{Op: "resolve", Path: path, Err: fs.ErrInvalid}
	}

	parts := split(path)
	node := m.root
	for i, part := range parts {
		if !node.isDir {
			return nil, &fs.PathError{Op: "resolve", Path: path, Err: fs.ErrNotExist}
		}
		child, ok := node.children[part]
		if !ok {
			return nil, &fs.PathError{Op: "resolve", Path: path, Err: fs.ErrNotExist}
		}
		last := i == len(parts)-1
		if child.isLink && (!last || followFinal) {
			rest := filepath.Join(append([]string{child.linkDest}, parts[i+1:]...)...)
			return m.resolve(rest, followFinal, depth+1)
		}
		node = child
	}
	return node, nil
}

// parentOf returns the directory node holding path's final component,
// following intermediate symlinks.
func (m *MemoryFS) parentOf(path string) (*fileNode, string, error) {
	dir, base := filepath.Split(filepath.Clean(path))
	node, err := m.resolve(dir, true, 0)
	if err != nil {
		return nil, "", err
	}
	if !node.isDir {
		return nil, "", &fs.PathError{Op: "open", Path: path, Err: fs.ErrInvalid}
	}
	return node, base, nil
}

func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	node, err := m.resolve(name, true, 0)
	if err != nil {
		return nil, err
	}
	return node.info(), nil
}

func (m *MemoryFS) Lstat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	node, err := m.resolve(name, false, 0)
	if err != nil {
		return nil, err
	}
	return node.info(), nil
}

func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	node, err := m.resolve(name, true, 0)
	if err != nil {
		return nil, err
	}
	if !node.isDir {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}

	names := make([]string, 0, len(node.children))
	for child := range node.children {
		names = append(names, child)
	}
	sort.Strings(names)

	entries := make([]fs.DirEntry, 0, len(names))
	for _, child := range names {
		entries = append(entries, dirEntry{node.children[child]})
	}
	return entries, nil
}

func (m *MemoryFS) Symlink(oldname, newname string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	parent, base, err := m.parentOf(newname)
	if err != nil {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: err}
	}
	if _, exists := parent.children[base]; exists {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: fs.ErrExist}
	}
	parent.children[base] = &fileNode{
		name:     base,
		mode:     0777 | fs.ModeSymlink,
		modTime:  time.Now(),
		isLink:   true,
		linkDest: oldname,
	}
	return nil
}

func (m *MemoryFS) Readlink(name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	node, err := m.resolve(name, false, 0)
	if err != nil {
		return "", err
	}
	if !node.isLink {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: fs.ErrInvalid}
	}
	return node.linkDest, nil
}

func (m *MemoryFS) MkdirAll(path string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	node := m.root
	for _, part := range split(path) {
		child, ok := node.children[part]
		if !ok {
			child = &fileNode{
				name:     part,
				mode:     perm | fs.ModeDir,
				modTime:  time.Now(),
				isDir:    true,
				children: make(map[string]*fileNode),
			}
			node.children[part] = child
		}
		if child.isLink {
			var err error
			child, err = m.resolve(child.linkDest, true, 0)
			if err != nil {
				return err
			}
		}
		if !child.isDir {
			return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrExist}
		}
		node = child
	}
	return nil
}

// Remove deletes a file or symlink. A directory symlink is unlinked
// without touching its destination, matching os.Remove.
func (m *MemoryFS) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	parent, base, err := m.parentOf(name)
	if err != nil {
		return err
	}
	node, ok := parent.children[base]
	if !ok {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	if node.isDir && !node.isLink && len(node.children) > 0 {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrInvalid}
	}
	delete(parent.children, base)
	return nil
}

func (m *MemoryFS) Hide(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hideErr != nil {
		return m.hideErr
	}
	m.hidden[filepath.Clean(name)] = true
	return nil
}

// WriteFile creates a regular file with the given content, creating
// parent directories as needed. Test setup helper.
func (m *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := m.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	parent, base, err := m.parentOf(name)
	if err != nil {
		return err
	}
	parent.children[base] = &fileNode{
		name:    base,
		mode:    perm,
		modTime: time.Now(),
		content: append([]byte(nil), data...),
	}
	return nil
}

// SetHideError makes every subsequent Hide call fail with err.
func (m *MemoryFS) SetHideError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hideErr = err
}

// IsHidden reports whether Hide was called successfully for the path.
func (m *MemoryFS) IsHidden(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hidden[filepath.Clean(name)]
}

// Exists reports whether anything sits at the path, links included.
func (m *MemoryFS) Exists(name string) bool {
	_, err := m.Lstat(name)
	return err == nil
}

// LinkDest returns the raw destination of the symlink at name, or
// ok=false when name is not a symlink.
func (m *MemoryFS) LinkDest(name string) (string, bool) {
	dest, err := m.Readlink(name)
	if err != nil {
		return "", false
	}
	return dest, true
}

func (n *fileNode) info() fs.FileInfo {
	return fileInfo{n}
}

type fileInfo struct {
	node *fileNode
}

func (f fileInfo) Name() string       { return f.node.name }
func (f fileInfo) Size() int64        { return int64(len(f.node.content)) }
func (f fileInfo) Mode() fs.FileMode  { return f.node.mode }
func (f fileInfo) ModTime() time.Time { return f.node.modTime }
func (f fileInfo) IsDir() bool        { return f.node.isDir }
func (f fileInfo) Sys() interface{}   { return nil }

type dirEntry struct {
	node *fileNode
}

func (d dirEntry) Name() string               { return d.node.name }
func (d dirEntry) IsDir() bool                { return d.node.isDir }
func (d dirEntry) Type() fs.FileMode          { return d.node.mode.Type() }
func (d dirEntry) Info() (fs.FileInfo, error) { return d.node.info(), nil }
