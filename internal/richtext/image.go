package richtext

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Image presentation constants.
const (
	// ScaleThresholdPx is the native width above which images are downscaled.
	ScaleThresholdPx = 440

	// ScaledWidthMM is the presentation width of downscaled images.
	ScaledWidthMM = 160

	// UploadDir is the directory under the media root holding uploaded images.
	UploadDir = "uploaded_files"
)

// Width selects how an image is presented.
type Width int

const (
	// WidthNative presents the image at its intrinsic size.
	WidthNative Width = iota
	// WidthScaled presents the image ScaledWidthMM wide, keeping aspect ratio.
	WidthScaled
)

func (w Width) String() string {
	if w == WidthScaled {
		return fmt.Sprintf("scaled(%dmm)", ScaledWidthMM)
	}
	return "native"
}

// Image is a resolved image ready for embedding.
type Image struct {
	Path        string
	Width       Width
	PixelWidth  int
	PixelHeight int
	MIME        string // sniffed content type, e.g. "image/png"
	Ext         string // extension matching MIME, with leading dot
}

// ImageResolver resolves image references against an upload directory.
type ImageResolver struct {
	dir string
}

// NewImageResolver creates a resolver for images stored under
// <mediaRoot>/uploaded_files.
func NewImageResolver(mediaRoot string) *ImageResolver {
	return &ImageResolver{dir: filepath.Join(mediaRoot, UploadDir)}
}

// Dir returns the directory images are resolved in.
func (r *ImageResolver) Dir() string {
	return r.dir
}

// Resolve maps src to a file in the upload directory, keyed by the last path
// segment of src, and probes it. Images wider than ScaleThresholdPx are scaled.
func (r *ImageResolver) Resolve(src string) (Image, error) {
	name := src
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, "\\\x00") {
		return Image{}, fmt.Errorf("%w: %w: %q", ErrImageResolution, ErrInvalidImageSource, src)
	}

	img, err := probe(filepath.Join(r.dir, name))
	if err != nil {
		return Image{}, err
	}
	if img.PixelWidth > ScaleThresholdPx {
		img.Width = WidthScaled
	}
	return img, nil
}

// Probe reads the image at path and presents it with the given width.
func (r *ImageResolver) Probe(path string, width Width) (Image, error) {
	img, err := probe(path)
	if err != nil {
		return Image{}, err
	}
	img.Width = width
	return img, nil
}

// probe sniffs the content type and reads the pixel dimensions of an image file.
func probe(path string) (Image, error) {
	f, err := os.Open(path) // #nosec G304 -- path confined to the upload directory or caller-provided
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrImageResolution, err)
	}
	defer func() { _ = f.Close() }()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return Image{}, fmt.Errorf("%w: %s: %v", ErrImageResolution, path, err)
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return Image{}, fmt.Errorf("%w: %s: not an image (%s)", ErrImageResolution, path, mtype.String())
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return Image{}, fmt.Errorf("%w: %s: %v", ErrImageResolution, path, err)
	}
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return Image{}, fmt.Errorf("%w: %s: %v", ErrImageResolution, path, err)
	}

	return Image{
		Path:        path,
		Width:       WidthNative,
		PixelWidth:  cfg.Width,
		PixelHeight: cfg.Height,
		MIME:        mtype.String(),
		Ext:         mtype.Extension(),
	}, nil
}

// Compile-time interface check.
var _ ImageSource = (*ImageResolver)(nil)
