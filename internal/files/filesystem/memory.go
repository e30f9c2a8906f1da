package filesystem

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryFile is a file or directory node in a MemoryFileSystem
type memoryFile struct {
	absPath string
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Safe for concurrent use by multiple goroutines.
type MemoryFileSystem struct {
	mu         sync.RWMutex
	files      map[string]*memoryFile // map of absolute path -> file
	root       string                 // root directory path
	unreadable map[string]bool        // directories whose listing fails, files that cannot be opened
	readOnly   map[string]bool        // directories that reject Create
	links      map[string]string      // symbolic link path -> target path
}

// maxLinkHops bounds link resolution, like ELOOP on a real filesystem.
const maxLinkHops = 40

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files:      make(map[string]*memoryFile),
		root:       root,
		unreadable: make(map[string]bool),
		readOnly:   make(map[string]bool),
		links:      make(map[string]string),
	}
	mfs.files[root] = newDirNode(root)
	return mfs
}

// Root returns the root path of the virtual filesystem.
func (mfs *MemoryFileSystem) Root() string { return mfs.root }

func newDirNode(absPath string) *memoryFile {
	return &memoryFile{
		absPath: absPath,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

// resolve maps a caller path onto an absolute virtual path.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if path.IsAbs(p) {
		return path.Clean(p)
	}
	return path.Join(mfs.root, p)
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.putFile(mfs.resolve(filePath), []byte(content))
}

// AddDir adds an empty directory (and its parents) to the in-memory filesystem
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	absPath := mfs.resolve(dirPath)
	if _, exists := mfs.files[absPath]; !exists {
		mfs.files[absPath] = newDirNode(absPath)
	}
	mfs.ensureDirectoriesExist(absPath)
}

// AddLink registers a symbolic link at linkPath pointing to the directory
// target. Paths through the link resolve to the target.
func (mfs *MemoryFileSystem) AddLink(linkPath, target string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	absLink := mfs.resolve(linkPath)
	mfs.links[absLink] = mfs.resolve(target)
	mfs.files[absLink] = newDirNode(absLink)
	mfs.ensureDirectoriesExist(absLink)
}

// follow rewrites p until no component of it is a registered link.
func (mfs *MemoryFileSystem) follow(p string) string {
	for hops := 0; hops < maxLinkHops && len(mfs.links) > 0; hops++ {
		next, ok := mfs.followOnce(p)
		if !ok {
			return p
		}
		p = next
	}
	return p
}

func (mfs *MemoryFileSystem) followOnce(p string) (string, bool) {
	for prefix := p; ; prefix = path.Dir(prefix) {
		if target, ok := mfs.links[prefix]; ok {
			return path.Join(target, strings.TrimPrefix(p, prefix)), true
		}
		if prefix == path.Dir(prefix) {
			return p, false
		}
	}
}

// MakeUnreadable makes ReadDir fail for the given directory, or Open for
// the given file.
func (mfs *MemoryFileSystem) MakeUnreadable(dirPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.unreadable[mfs.resolve(dirPath)] = true
}

// MakeReadOnly makes Create fail for files directly inside the given directory.
func (mfs *MemoryFileSystem) MakeReadOnly(dirPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.readOnly[mfs.resolve(dirPath)] = true
}

func (mfs *MemoryFileSystem) putFile(absPath string, content []byte) {
	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		content: content,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		},
	}
	mfs.ensureDirectoriesExist(absPath)
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == filePath || dir == "." {
		return
	}
	if _, exists := mfs.files[dir]; exists {
		return
	}
	mfs.files[dir] = newDirNode(dir)
	mfs.ensureDirectoriesExist(dir)
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	absPath := mfs.follow(mfs.resolve(dirPath))
	dir, exists := mfs.files[absPath]
	if !exists {
		return nil, fmt.Errorf("failed to read directory: %s: %w", dirPath, fs.ErrNotExist)
	}
	if !dir.info.isDir {
		return nil, fmt.Errorf("failed to read directory: %s: not a directory", dirPath)
	}
	if mfs.unreadable[absPath] {
		return nil, fmt.Errorf("failed to read directory: %s: %w", dirPath, fs.ErrPermission)
	}

	var result []FileInfo
	for p, file := range mfs.files {
		if p != absPath && path.Dir(p) == absPath {
			result = append(result, file.info)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result, nil
}

// ReadFile returns a copy of the content of a file.
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	file, exists := mfs.files[mfs.follow(mfs.resolve(filePath))]
	if !exists {
		return nil, fmt.Errorf("file not found: %s: %w", filePath, fs.ErrNotExist)
	}
	if file.info.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	if mfs.unreadable[file.absPath] {
		return nil, fmt.Errorf("open %s: %w", filePath, fs.ErrPermission)
	}
	return bytes.Clone(file.content), nil
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(filePath string) (io.ReadCloser, error) {
	content, err := mfs.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

// RealPath implements FileSystemProvider.RealPath. Memory filesystems have
// no links unless registered with AddLink.
func (mfs *MemoryFileSystem) RealPath(dirPath string) (string, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	absPath := mfs.follow(mfs.resolve(dirPath))
	if _, exists := mfs.files[absPath]; !exists {
		return "", fmt.Errorf("path not found: %s: %w", dirPath, fs.ErrNotExist)
	}
	return absPath, nil
}

// Stat returns file information for the given path.
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	file, exists := mfs.files[mfs.follow(mfs.resolve(statPath))]
	if !exists {
		return nil, fmt.Errorf("path not found: %s: %w", statPath, fs.ErrNotExist)
	}
	return file.info, nil
}

// Create implements FileSystemProvider.Create.
// The content becomes visible when the returned writer is closed.
func (mfs *MemoryFileSystem) Create(filePath string) (io.WriteCloser, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	absPath := mfs.follow(mfs.resolve(filePath))
	parent, exists := mfs.files[path.Dir(absPath)]
	if !exists || !parent.info.isDir {
		return nil, fmt.Errorf("create %s: parent directory missing: %w", filePath, fs.ErrNotExist)
	}
	if mfs.readOnly[path.Dir(absPath)] {
		return nil, fmt.Errorf("create %s: %w", filePath, fs.ErrPermission)
	}
	if existing, ok := mfs.files[absPath]; ok && existing.info.isDir {
		return nil, fmt.Errorf("create %s: is a directory", filePath)
	}
	return &memoryWriter{fs: mfs, absPath: absPath}, nil
}

// memoryWriter buffers writes until Close
type memoryWriter struct {
	fs      *MemoryFileSystem
	absPath string
	buf     bytes.Buffer
	closed  bool
}

func (w *memoryWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, fs.ErrClosed
	}
	return w.buf.Write(p)
}

func (w *memoryWriter) Close() error {
	if w.closed {
		return fs.ErrClosed
	}
	w.closed = true
	w.fs.mu.Lock()
	defer w.fs.mu.Unlock()
	w.fs.putFile(w.absPath, bytes.Clone(w.buf.Bytes()))
	return nil
}

// Files returns the paths of all regular files under the root, sorted.
func (mfs *MemoryFileSystem) Files() []string {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	var paths []string
	for p, file := range mfs.files {
		if !file.info.isDir && (p == mfs.root || strings.HasPrefix(p, mfs.root+"/")) {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}
