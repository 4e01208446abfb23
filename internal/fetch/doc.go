// Package fetch downloads the bulk dataset files a build run consumes.
//
// Downloads go to a temp file first and are renamed into place only on
// success, so a failed transfer never corrupts an existing dataset. Existing
// files younger than the configured max age are reused unless the caller
// forces an overwrite. Open layers gzip decompression over the stored file
// for the parser.
package fetch
