package ankiconnect

import (
	"context"
	"errors"

	"github.com/ankiconnect/ankiconnect.go/pkg/connection"
	"github.com/ankiconnect/ankiconnect.go/pkg/models"
)

// ErrEmptyFilename is returned when a media operation is given an empty
// filename.
var ErrEmptyFilename = errors.New("filename must not be empty")

// ErrEmptyMediaSource is returned when a media helper is given an empty
// path, URL or data payload.
var ErrEmptyMediaSource = errors.New("media source must not be empty")

// MediaClient groups the media file actions.
type MediaClient struct {
	conn connection.Connection
}

// StoreFile stores a media file in the collection's media folder and
// returns the filename actually used. When overwrite is false and a file
// with the same name already exists, the add-on picks a fresh name and
// returns it.
func (c *MediaClient) StoreFile(ctx context.Context, source models.MediaSource, filename string, overwrite bool) (string, error) {
	if filename == "" {
		return "", ErrEmptyFilename
	}
	params := storeMediaFileParams{
		Filename:       filename,
		DeleteExisting: overwrite,
	}
	if path, ok := source.Path(); ok {
		params.Path = path
	}
	if url, ok := source.URL(); ok {
		params.URL = url
	}
	if data, ok := source.Data(); ok {
		params.Data = data
	}
	return connection.Send[string](ctx, c.conn, "storeMediaFile", params)
}

// StoreFromPath stores the file at the given local path under filename.
func (c *MediaClient) StoreFromPath(ctx context.Context, path, filename string, overwrite bool) (string, error) {
	if path == "" {
		return "", ErrEmptyMediaSource
	}
	return c.StoreFile(ctx, models.MediaFromPath(path), filename, overwrite)
}

// StoreFromURL downloads the URL on the Anki side and stores it under
// filename.
func (c *MediaClient) StoreFromURL(ctx context.Context, url, filename string, overwrite bool) (string, error) {
	if url == "" {
		return "", ErrEmptyMediaSource
	}
	return c.StoreFile(ctx, models.MediaFromURL(url), filename, overwrite)
}

// StoreFromData stores base64-encoded content under filename.
func (c *MediaClient) StoreFromData(ctx context.Context, data, filename string, overwrite bool) (string, error) {
	if data == "" {
		return "", ErrEmptyMediaSource
	}
	return c.StoreFile(ctx, models.MediaFromData(data), filename, overwrite)
}

// RetrieveFile returns the base64-encoded content of a stored media file.
func (c *MediaClient) RetrieveFile(ctx context.Context, filename string) (string, error) {
	if filename == "" {
		return "", ErrEmptyFilename
	}
	return connection.Send[string](ctx, c.conn, "retrieveMediaFile", mediaFilenameParams{Filename: filename})
}

// DeleteFile removes a stored media file.
func (c *MediaClient) DeleteFile(ctx context.Context, filename string) error {
	if filename == "" {
		return ErrEmptyFilename
	}
	return c.conn.Send(ctx, nil, "deleteMediaFile", mediaFilenameParams{Filename: filename})
}

// ListFiles returns the names of stored media files matching the glob
// pattern, for example "*.jpg".
func (c *MediaClient) ListFiles(ctx context.Context, pattern string) ([]string, error) {
	return connection.Send[[]string](ctx, c.conn, "getMediaFilesNames", mediaPatternParams{Pattern: pattern})
}

// Directory returns the path of the collection's media folder.
func (c *MediaClient) Directory(ctx context.Context) (string, error) {
	return connection.Send[string](ctx, c.conn, "getMediaDirPath", nil)
}

// MissingFiles returns the filenames referenced by notes that are absent
// from the media folder.
func (c *MediaClient) MissingFiles(ctx context.Context) ([]string, error) {
	return connection.Send[[]string](ctx, c.conn, "checkMediaDatabase", nil)
}
