package save

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/nfnt/resize"
)

// thumbnailWidth is the stored slot preview width; height follows the frame's
// aspect ratio.
const thumbnailWidth = 160

// ThumbnailPath returns the preview image path for a save file.
func ThumbnailPath(saveFile string) string {
	return strings.TrimSuffix(saveFile, Extension) + ".png"
}

// WriteThumbnail downscales a rendered frame and stores it next to the save
// so slot pickers can show a preview.
func (m *Manager) WriteThumbnail(meta Metadata, frame image.Image) error {
	thumb := resize.Resize(thumbnailWidth, 0, frame, resize.Lanczos3)
	path := ThumbnailPath(meta.File)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save: create thumbnail %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, thumb); err != nil {
		return fmt.Errorf("save: encode thumbnail %s: %w", path, err)
	}
	return nil
}
