package middleware

import (
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
)

// compressMinLength is the smallest body worth compressing. Class listings
// easily clear this; tiny error envelopes are sent as-is.
const compressMinLength = 512

type compressWriter struct {
	gin.ResponseWriter
	br      *brotli.Writer
	pending []byte
	started bool
}

func (w *compressWriter) Write(p []byte) (int, error) {
	if w.started {
		return w.br.Write(p)
	}
	w.pending = append(w.pending, p...)
	if len(w.pending) < compressMinLength {
		return len(p), nil
	}
	w.started = true
	w.Header().Set("Content-Encoding", "br")
	w.Header().Del("Content-Length")
	if _, err := w.br.Write(w.pending); err != nil {
		return 0, err
	}
	w.pending = nil
	return len(p), nil
}

func (w *compressWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

func (w *compressWriter) finish() error {
	if w.started {
		return w.br.Close()
	}
	if len(w.pending) > 0 {
		_, err := w.ResponseWriter.Write(w.pending)
		w.pending = nil
		return err
	}
	return nil
}

// Compress serves brotli-encoded responses to clients that advertise
// support. Bodies below compressMinLength pass through unchanged.
func Compress() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !wantsBrotli(c.GetHeader("Accept-Encoding")) {
			c.Next()
			return
		}

		c.Header("Vary", "Accept-Encoding")

		cw := &compressWriter{
			ResponseWriter: c.Writer,
			br:             brotli.NewWriterLevel(c.Writer, brotli.DefaultCompression),
		}
		c.Writer = cw
		defer func() {
			if err := cw.finish(); err != nil {
				_ = c.Error(err)
			}
		}()

		c.Next()
	}
}

func wantsBrotli(acceptEncoding string) bool {
	for _, enc := range strings.Split(acceptEncoding, ",") {
		if strings.TrimSpace(strings.ToLower(enc)) == "br" {
			return true
		}
	}
	return false
}
