// Package walker collects the static asset files copied into an exported
// site.
package walker

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultMaxFileSize is the largest asset copied (16 MB).
const DefaultMaxFileSize int64 = 16 << 20

// FileInfo holds metadata about a single asset discovered during traversal.
type FileInfo struct {
	Path        string // Absolute path on disk.
	RelPath     string // Slash-separated path relative to the root directory.
	Size        int64
	MediaType   string
	ContentHash string // SHA-256 hex digest of the file content.
}

// ETag returns a strong entity tag derived from the content hash.
func (f FileInfo) ETag() string {
	if len(f.ContentHash) < 16 {
		return `"` + f.ContentHash + `"`
	}
	return `"` + f.ContentHash[:16] + `"`
}

// WalkerConfig controls the behaviour of the Walk function.
type WalkerConfig struct {
	RootDir     string   // Root directory to walk.
	Include     []string // Glob patterns, only matching files are included.
	Exclude     []string // Glob patterns, matching files are excluded.
	MaxFileSize int64    // Files larger than this are skipped (0 = use default).
}

// Walk traverses the directory tree rooted at config.RootDir and returns
// every file that passes filtering, sorted by relative path. It respects
// include/exclude patterns and a root .gitignore.
func Walk(config WalkerConfig) ([]FileInfo, error) {
	if err := ValidatePatterns(config.Include); err != nil {
		return nil, fmt.Errorf("walker: include: %w", err)
	}
	if err := ValidatePatterns(config.Exclude); err != nil {
		return nil, fmt.Errorf("walker: exclude: %w", err)
	}

	root, err := filepath.Abs(config.RootDir)
	if err != nil {
		return nil, fmt.Errorf("walker: resolve root: %w", err)
	}
	if info, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("walker: %w", err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("walker: %s is not a directory", root)
	}

	maxSize := config.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	gitignorePatterns := loadGitignore(filepath.Join(root, ".gitignore"))

	var files []FileInfo

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Skip entries we cannot read instead of aborting.
			return nil
		}

		name := d.Name()

		if shouldExclude(name) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() || name == ".gitignore" {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		if matchesGitignore(relPath, gitignorePatterns) {
			return nil
		}
		if !MatchesInclude(relPath, config.Include) {
			return nil
		}
		if MatchesExclude(relPath, config.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.Size() > maxSize {
			return nil
		}

		hash, err := hashFile(path)
		if err != nil {
			return nil
		}

		files = append(files, FileInfo{
			Path:        path,
			RelPath:     filepath.ToSlash(relPath),
			Size:        info.Size(),
			MediaType:   MediaType(name),
			ContentHash: hash,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walker: %w", err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}

// Copy writes f below dstRoot at its relative path.
func Copy(f FileInfo, dstRoot string) error {
	dst := filepath.Join(dstRoot, filepath.FromSlash(f.RelPath))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(f.Path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", f.RelPath, err)
	}
	return out.Close()
}

// extraTypes covers extensions the system mime table often lacks.
var extraTypes = map[string]string{
	".webp":  "image/webp",
	".avif":  "image/avif",
	".woff2": "font/woff2",
	".woff":  "font/woff",
	".ttf":   "font/ttf",
	".otf":   "font/otf",
	".ico":   "image/x-icon",
	".md":    "text/markdown; charset=utf-8",
	".yml":   "application/yaml",
	".yaml":  "application/yaml",
}

// MediaType guesses a file's content type from its extension.
func MediaType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if t, ok := extraTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}

// hashFile computes the SHA-256 digest of the given file.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// loadGitignore reads a .gitignore file and returns its non-empty,
// non-comment lines as patterns.
func loadGitignore(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var patterns []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}

// matchesGitignore checks if a relative path matches any gitignore pattern.
// Patterns without a slash match any path component.
func matchesGitignore(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	normalized := filepath.ToSlash(relPath)
	parts := strings.Split(normalized, "/")

	for _, pattern := range patterns {
		dirOnly := strings.HasSuffix(pattern, "/")
		pattern = strings.TrimSuffix(pattern, "/")

		if !strings.Contains(pattern, "/") {
			for i, part := range parts {
				// A directory-only pattern cannot match the file itself.
				if dirOnly && i == len(parts)-1 {
					continue
				}
				if matched, _ := filepath.Match(pattern, part); matched {
					return true
				}
			}
			continue
		}
		pattern = strings.TrimPrefix(pattern, "/")
		if matched, _ := anchoredMatch(pattern, normalized); matched {
			return true
		}
	}
	return false
}

func anchoredMatch(pattern, name string) (bool, error) {
	if ok, err := filepath.Match(pattern, name); err == nil && ok {
		return true, nil
	}
	// "dir/sub" also covers everything below it.
	return strings.HasPrefix(name, pattern+"/"), nil
}
