package services

import (
	"encoding/base64"
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/rpupo63/portfolio-site-backend/errs"
)

// EncodeDataURL sniffs the content type of data and returns it with the
// matching data: URL. The declared name is only used when sniffing is
// inconclusive.
func EncodeDataURL(name string, data []byte) (dataURL, mimeType string) {
	mtype := mimetype.Detect(data)
	mimeType = mtype.String()
	if mtype.Is("application/octet-stream") || mtype.Is("text/plain") {
		if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); byExt != "" {
			mimeType = byExt
		}
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), mimeType
}

// DecodeDataURL splits a base64 data URL into its media type and payload
func DecodeDataURL(dataURL string) (mimeType string, data []byte, err error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", nil, errs.NewDataURLError("missing data: scheme")
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, errs.NewDataURLError("missing payload separator")
	}
	mimeType, isBase64 := strings.CutSuffix(header, ";base64")
	if !isBase64 {
		return "", nil, errs.NewDataURLError("only base64 data URLs are supported")
	}
	if mimeType == "" {
		mimeType = "text/plain;charset=US-ASCII"
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, errs.NewBase64DecodeError("data URL", err)
	}
	return mimeType, data, nil
}
