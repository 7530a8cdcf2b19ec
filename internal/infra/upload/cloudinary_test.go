//go:build unit

package upload_test

import (
	"testing"
	"time"

	"click-collect/internal/infra/upload"
	"click-collect/internal/pkg/config"
	"click-collect/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignature(t *testing.T) {
	// example from Cloudinary's signed upload documentation
	got := upload.Signature(map[string]string{
		"timestamp": "1315060510",
		"public_id": "sample_image",
		"eager":     "w_400,h_300,c_pad|w_260,h_200,c_crop",
	}, "abcd")
	assert.Equal(t, "bfd09f95f331f558cbd1320e67aa8d488770583e", got)
}

func TestCloudinarySigner_Sign(t *testing.T) {
	now := time.Unix(1772355600, 0)

	t.Run("signs folder and timestamp", func(t *testing.T) {
		cfg := config.CloudinaryConfig{CloudName: "demo", APIKey: "key", APISecret: "secret", Folder: "clickcollect/products"}
		sig, err := upload.NewCloudinarySigner(cfg).Sign(now)
		require.NoError(t, err)

		assert.Equal(t, int64(1772355600), sig.Timestamp)
		assert.Equal(t, "demo", sig.CloudName)
		assert.Equal(t, "clickcollect/products", sig.Folder)
		assert.Equal(t, upload.Signature(map[string]string{
			"folder":    "clickcollect/products",
			"timestamp": "1772355600",
		}, "secret"), sig.Signature)
		assert.Len(t, sig.Signature, 40)
	})

	t.Run("missing credentials", func(t *testing.T) {
		_, err := upload.NewCloudinarySigner(config.CloudinaryConfig{CloudName: "demo"}).Sign(now)
		assert.ErrorIs(t, err, upload.ErrNotConfigured)
		assert.True(t, errs.Is(err, errs.ErrUnavailable))
	})
}
