// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is opened, read and closed at construction time and its contents are
// cached, so subsequent calls to Fetch() return the same data without touching
// the filesystem again. The handle is released on every exit path.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/etc/ipa/default.conf")()
//	if err != nil {
//	    // Handle error: file not found, permission denied, path is directory, etc.
//	}
//	data, err := fetcher.Fetch()
//
// Error Handling:
//   - Construction returns an error wrapping config.ErrFileOpen if the file cannot be read
//   - Errors include the filepath for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
