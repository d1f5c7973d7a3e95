package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any { return gzip.NewWriter(nil) },
}

var gzipReaderPool = sync.Pool{
	New: func() any { return new(gzip.Reader) },
}

// withGzip transparently decompresses gzip request bodies and compresses
// responses for clients that accept gzip. Sync payloads are JSON and
// compress well; large download pages benefit the most.
func (h *Handler) withGzip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.Header.Get("Content-Encoding"), "gzip") && req.Body != nil {
			if !decompressRequestBody(req) {
				http.Error(w, "invalid gzip data", http.StatusBadRequest)
				return
			}
		}

		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		zw := gzipWriterPool.Get().(*gzip.Writer)
		zw.Reset(w)

		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, zw: zw}, req)

		zw.Close()
		gzipWriterPool.Put(zw)
	})
}

// decompressRequestBody swaps the request body for a pooled gzip reader.
// Returns false when the body is not valid gzip.
func decompressRequestBody(req *http.Request) bool {
	zr := gzipReaderPool.Get().(*gzip.Reader)
	if err := zr.Reset(req.Body); err != nil {
		gzipReaderPool.Put(zr)
		return false
	}

	req.Body = &pooledBodyReader{zr: zr}
	req.Header.Del("Content-Encoding")
	return true
}

type pooledBodyReader struct {
	zr *gzip.Reader

	closeOnce sync.Once
}

func (r *pooledBodyReader) Read(p []byte) (int, error) {
	return r.zr.Read(p)
}

func (r *pooledBodyReader) Close() error {
	var err error
	r.closeOnce.Do(func() {
		err = r.zr.Close()
		gzipReaderPool.Put(r.zr)
	})
	return err
}

type gzipResponseWriter struct {
	http.ResponseWriter
	zw *gzip.Writer
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	return w.zw.Write(data)
}

var _ io.ReadCloser = (*pooledBodyReader)(nil)
