package media

import (
	"context"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sociality/internal/dbmongo"
)

// GridFSStorage stores uploads in a Mongo GridFS bucket, keyed by the stored
// file name.
type GridFSStorage struct {
	client *dbmongo.MongoClient
}

func NewGridFSStorage(client *dbmongo.MongoClient) *GridFSStorage {
	return &GridFSStorage{client: client}
}

func (s *GridFSStorage) Save(ctx context.Context, name, contentType string, r io.Reader) error {
	opts := options.GridFSUpload().SetMetadata(bson.M{"content_type": contentType})
	stream, err := s.client.GridFS.OpenUploadStream(name, opts)
	if err != nil {
		return fmt.Errorf("gridfs upload failed: %w", err)
	}
	defer stream.Close()

	if _, err := io.Copy(stream, r); err != nil {
		return fmt.Errorf("gridfs copy failed: %w", err)
	}
	return nil
}

func (s *GridFSStorage) Delete(ctx context.Context, name string) error {
	cursor, err := s.client.GridFS.Find(bson.M{"filename": name})
	if err != nil {
		return fmt.Errorf("gridfs find failed: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var file struct {
			ID interface{} `bson:"_id"`
		}
		if err := cursor.Decode(&file); err != nil {
			return fmt.Errorf("gridfs decode failed: %w", err)
		}
		if err := s.client.GridFS.Delete(file.ID); err != nil {
			return fmt.Errorf("gridfs delete failed: %w", err)
		}
	}
	return cursor.Err()
}

func (s *GridFSStorage) Open(ctx context.Context, name string) (io.ReadCloser, int64, error) {
	stream, err := s.client.GridFS.OpenDownloadStreamByName(name)
	if err != nil {
		return nil, 0, fmt.Errorf("gridfs download failed: %w", err)
	}
	return stream, stream.GetFile().Length, nil
}
