package media

import (
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"

	"salon-site-server/logx"
	"salon-site-server/models"
)

// CloudinaryScheme marks catalog image fields that hold a Cloudinary public id
const CloudinaryScheme = "cloudinary:"

// ImageResolver turns catalog image references into delivery URLs
type ImageResolver struct {
	cld            *cloudinary.Cloudinary
	transformation string
}

// NewImageResolver builds a resolver from a CLOUDINARY_URL or, failing
// that, a bare cloud name. With neither, references pass through untouched.
func NewImageResolver(cloudinaryURL, cloudName, transformation string) (*ImageResolver, error) {
	r := &ImageResolver{transformation: transformation}

	switch {
	case cloudinaryURL != "":
		cld, err := cloudinary.NewFromURL(cloudinaryURL)
		if err != nil {
			return nil, fmt.Errorf("failed to configure cloudinary: %w", err)
		}
		r.cld = cld
	case cloudName != "":
		cld, err := cloudinary.NewFromParams(cloudName, "", "")
		if err != nil {
			return nil, fmt.Errorf("failed to configure cloudinary: %w", err)
		}
		r.cld = cld
	default:
		logx.Info().Msg("🖼️ Cloudinary not configured, catalog images are served as-is")
	}
	return r, nil
}

// Resolve returns a delivery URL for one image reference
func (r *ImageResolver) Resolve(ref string) string {
	if !strings.HasPrefix(ref, CloudinaryScheme) || r == nil || r.cld == nil {
		return ref
	}
	publicID := strings.TrimPrefix(ref, CloudinaryScheme)

	img, err := r.cld.Image(publicID)
	if err != nil {
		logx.Warn().Err(err).Str("public_id", publicID).Msg("⚠️ Failed to build image asset")
		return ref
	}
	img.Transformation = r.transformation

	url, err := img.String()
	if err != nil {
		logx.Warn().Err(err).Str("public_id", publicID).Msg("⚠️ Failed to build image URL")
		return ref
	}
	return url
}

// ResolveAll returns copies of records with image references resolved
func (r *ImageResolver) ResolveAll(records []models.ServiceRecord) []models.ServiceRecord {
	out := make([]models.ServiceRecord, len(records))
	for i, record := range records {
		record.Image = r.Resolve(record.Image)
		out[i] = record
	}
	return out
}
