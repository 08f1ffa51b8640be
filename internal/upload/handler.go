package upload

import (
	"bytes"
	"image"
	"io"
	"os"
	"path/filepath"

	"minhas-backend/internal/config"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp" // WebP decoder
)

// ThumbWidth is the pixel width of generated thumbnail variants.
const ThumbWidth = 480

var extByFormat = map[string]string{
	"jpeg": ".jpg",
	"png":  ".png",
	"gif":  ".gif",
	"webp": ".webp",
}

// POST /api/upload (admin, multipart field "image")
//
// Stores the uploaded image under a generated name and returns its public
// path plus a JPEG thumbnail path. Anything that does not decode as
// JPEG/PNG/GIF/WebP is rejected, the decode doubles as the type allow-list.
func ImageHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "No file uploaded")
		}

		f, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not read uploaded file")
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not read uploaded file")
		}

		_, format, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Unsupported image format, use JPEG, PNG, GIF or WebP")
		}
		ext, ok := extByFormat[format]
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "Unsupported image format, use JPEG, PNG, GIF or WebP")
		}

		if err := os.MkdirAll(cfg.UploadPath, 0o755); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not prepare upload directory")
		}

		id := uuid.NewString()
		name := id + ext
		if err := os.WriteFile(filepath.Join(cfg.UploadPath, name), data, 0o644); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not store uploaded file")
		}

		// Best effort thumbnail, the original path is what content refers to.
		// Shares the original's id so the pair is easy to correlate on disk.
		thumbPath := ""
		if img, derr := imaging.Decode(bytes.NewReader(data)); derr == nil {
			thumbName := "thumb_" + id + ".jpg"
			thumb := imaging.Resize(img, ThumbWidth, 0, imaging.Lanczos)
			if serr := imaging.Save(thumb, filepath.Join(cfg.UploadPath, thumbName)); serr == nil {
				thumbPath = "/uploads/" + thumbName
			}
		}

		return c.JSON(fiber.Map{
			"filePath":  "/uploads/" + name,
			"thumbPath": thumbPath,
		})
	}
}
