package hasher

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/moyu-x/dupe-hunter/internal"
)

func TestHash(t *testing.T) {
	fs := afero.NewMemMapFs()
	testFile := "/data/test.txt"

	if err := afero.WriteFile(fs, testFile, []byte("test content for hashing"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	h := NewHasher(fs)
	fp, err := h.Hash(testFile)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if len(fp.Digest) != 32 {
		t.Errorf("Expected 32 hex chars, got %d (%s)", len(fp.Digest), fp.Digest)
	}

	fp2, err := h.Hash(testFile)
	if err != nil {
		t.Fatalf("Hash() second call error = %v", err)
	}

	if fp.Digest != fp2.Digest {
		t.Error("Hash should be consistent for same file")
	}
}

func TestHash_DifferentContent(t *testing.T) {
	fs := afero.NewMemMapFs()

	if err := afero.WriteFile(fs, "/file1.txt", []byte("content1"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := afero.WriteFile(fs, "/file2.txt", []byte("content2"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	h := NewHasher(fs)
	fp1, err := h.Hash("/file1.txt")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	fp2, err := h.Hash("/file2.txt")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if fp1.Digest == fp2.Digest {
		t.Error("Different content should produce different hashes")
	}
}

func TestHash_NonExistentFile(t *testing.T) {
	h := NewHasher(afero.NewMemMapFs())
	if _, err := h.Hash("/non/existent/file.txt"); err == nil {
		t.Error("Expected error for non-existent file")
	}
}

// 跨越多个块边界的文件，摘要只取决于内容
func TestHash_ChunkBoundaries(t *testing.T) {
	fs := afero.NewMemMapFs()
	h := NewHasher(fs)

	sizes := []int{
		internal.ChunkSize - 1,
		internal.ChunkSize,
		internal.ChunkSize + 1,
		internal.ChunkSize*3 + 17,
	}

	for _, size := range sizes {
		data := bytes.Repeat([]byte{'z'}, size)
		if err := afero.WriteFile(fs, "/a", data, 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
		if err := afero.WriteFile(fs, "/b", data, 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}

		fpA, err := h.Hash("/a")
		if err != nil {
			t.Fatalf("Hash() error = %v", err)
		}
		fpB, err := h.Hash("/b")
		if err != nil {
			t.Fatalf("Hash() error = %v", err)
		}
		if fpA.Digest != fpB.Digest {
			t.Errorf("size %d: identical content hashed differently", size)
		}

		data[len(data)-1] = 'y'
		if err := afero.WriteFile(fs, "/b", data, 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
		fpB, err = h.Hash("/b")
		if err != nil {
			t.Fatalf("Hash() error = %v", err)
		}
		if fpA.Digest == fpB.Digest {
			t.Errorf("size %d: last byte change not detected", size)
		}
	}
}

func TestHash_DetectsKind(t *testing.T) {
	fs := afero.NewMemMapFs()
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D}
	if err := afero.WriteFile(fs, "/image.png", png, 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := afero.WriteFile(fs, "/plain.txt", []byte("just text"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	h := NewHasher(fs)
	fp, err := h.Hash("/image.png")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if fp.Kind != "image/png" {
		t.Errorf("Expected image/png, got %q", fp.Kind)
	}

	fp, err = h.Hash("/plain.txt")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if fp.Kind != "" {
		t.Errorf("Expected unknown kind, got %q", fp.Kind)
	}
}

func TestHash_LargeFile(t *testing.T) {
	tempDir := t.TempDir()

	largeFile := filepath.Join(tempDir, "large.bin")
	const fileSize = 10 * 1024 * 1024

	file, err := os.Create(largeFile)
	if err != nil {
		t.Fatalf("Failed to create large file: %v", err)
	}

	data := make([]byte, 4096)
	for i := 0; i < fileSize/4096; i++ {
		if _, err := file.Write(data); err != nil {
			file.Close()
			t.Fatalf("Failed to write to large file: %v", err)
		}
	}
	file.Close()

	fp, err := NewHasher(afero.NewOsFs()).Hash(largeFile)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if fp.Digest == "" {
		t.Error("Expected non-empty digest for large file")
	}
}
