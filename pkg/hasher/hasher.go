package hasher

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/h2non/filetype"
	"github.com/spf13/afero"
	"github.com/zeebo/xxh3"

	"github.com/moyu-x/dupe-hunter/internal"
	"github.com/moyu-x/dupe-hunter/pkg/logger"
)

// Fingerprint 文件内容指纹
type Fingerprint struct {
	Digest string
	Kind   string
}

type Hasher struct {
	fs        afero.Fs
	chunkSize int
}

func NewHasher(fs afero.Fs) *Hasher {
	return &Hasher{
		fs:        fs,
		chunkSize: internal.ChunkSize,
	}
}

// Hash 按固定块大小流式读取文件，计算 XXH3-128 摘要
// 首块同时用于识别文件类型
func (h *Hasher) Hash(path string) (Fingerprint, error) {
	logger.Get().Debug().Msgf("计算文件哈希: %s", path)

	file, err := h.fs.Open(path)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("打开文件失败: %w", err)
	}
	defer file.Close()

	digest := xxh3.New()
	buf := make([]byte, h.chunkSize)

	n, err := io.ReadFull(file, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return Fingerprint{}, fmt.Errorf("读取文件失败: %w", err)
	}
	head := buf[:n]
	digest.Write(head)

	kind := ""
	if t, err := filetype.Match(head); err == nil && t != filetype.Unknown {
		kind = t.MIME.Value
	}

	// 首块未读满说明文件已读完
	if n == len(buf) {
		for {
			n, err := file.Read(buf)
			digest.Write(buf[:n])
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return Fingerprint{}, fmt.Errorf("计算哈希失败: %w", err)
			}
		}
	}

	sum := digest.Sum128().Bytes()
	fp := Fingerprint{
		Digest: hex.EncodeToString(sum[:]),
		Kind:   kind,
	}
	logger.Get().Trace().Msgf("文件哈希计算完成: %s -> %s", path, fp.Digest)
	return fp, nil
}
