package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"jasper/internal/connector"
)

// Open opens the file or folder at id with the desktop's default handler.
func (c *Connector) Open(ctx context.Context, id string) (string, error) {
	if _, err := os.Stat(id); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", connector.ErrItemNotFound, id)
		}
		return "", err
	}
	if err := c.cfg.Opener(id); err != nil {
		c.l.Errorf(ctx, "%s.Open: %s: %v", LogPrefix, id, err)
		return "", err
	}
	return MsgOpened, nil
}

// ReadContent returns up to ReadLimit bytes of a file as text.
func (c *Connector) ReadContent(ctx context.Context, id string) (string, error) {
	text, err := ReadText(id, c.cfg.ReadLimit)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", connector.ErrItemNotFound, id)
	}
	return text, err
}

// ReadText reads a prefix of path, decoding UTF-8 and falling back to
// Windows-1250 for legacy Central European files.
func ReadText(path string, limit int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, int64(limit)))
	if err != nil {
		return "", err
	}
	if s, ok := validUTF8Prefix(data); ok {
		return s, nil
	}
	decoded, err := charmap.Windows1250.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", path, err)
	}
	return string(decoded), nil
}

// validUTF8Prefix accepts data that is UTF-8 apart from a rune cut off by the
// read limit.
func validUTF8Prefix(data []byte) (string, bool) {
	for cut := 0; cut < utf8.UTFMax && cut <= len(data); cut++ {
		if utf8.Valid(data[:len(data)-cut]) {
			return string(data[:len(data)-cut]), true
		}
	}
	return "", false
}
