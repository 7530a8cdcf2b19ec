// Package upload signs direct browser uploads to Cloudinary.
package upload

import (
	"crypto/sha1" // #nosec G505 -- Cloudinary's signing scheme is sha1
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
	"time"

	"click-collect/internal/pkg/config"
	"click-collect/internal/pkg/errs"
	"click-collect/internal/usecase/commands"
)

var ErrNotConfigured = errs.Class("Cloudinary not configured", errs.ErrUnavailable)

type CloudinarySigner struct {
	cfg config.CloudinaryConfig
}

func NewCloudinarySigner(cfg config.CloudinaryConfig) *CloudinarySigner {
	return &CloudinarySigner{cfg: cfg}
}

var _ commands.ImageSigner = (*CloudinarySigner)(nil)

func (s *CloudinarySigner) Sign(now time.Time) (*commands.UploadSignature, error) {
	if !s.cfg.Enabled() {
		return nil, ErrNotConfigured
	}
	ts := now.Unix()
	params := map[string]string{
		"folder":    s.cfg.Folder,
		"timestamp": strconv.FormatInt(ts, 10),
	}
	return &commands.UploadSignature{
		Signature: Signature(params, s.cfg.APISecret),
		Timestamp: ts,
		CloudName: s.cfg.CloudName,
		APIKey:    s.cfg.APIKey,
		Folder:    s.cfg.Folder,
	}, nil
}

// Signature is hex sha1 over the key-sorted "k=v&k=v" string followed by the secret.
func Signature(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + params[k]
	}
	sum := sha1.Sum([]byte(strings.Join(parts, "&") + secret)) // #nosec G401
	return hex.EncodeToString(sum[:])
}
