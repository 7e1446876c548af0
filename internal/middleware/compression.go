package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// compressionExcludedPaths lists responses not worth gzipping.
// Prometheus scrapers negotiate their own encoding.
var compressionExcludedPaths = []string{"/metrics"}

// Compression gzips responses for clients that advertise gzip support.
// Label files are served as PDFs and are already deflated, so they are
// excluded by extension.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedPaths(compressionExcludedPaths),
		gzip.WithExcludedExtensions([]string{".pdf"}),
	)
}
