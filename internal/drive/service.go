package drive

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const defaultPageSize = 100

const searchFields = "nextPageToken, files(id,name,mimeType,size,modifiedTime,owners,parents)"

// Service wraps the Drive API for searching, trashing, and deleting the
// authenticated user's files.
type Service struct {
	files    *drive.FilesService
	pageSize int64
}

// NewService creates a Service on top of an authenticated HTTP client.
// pageSize controls results per page; values <= 0 use the default.
func NewService(ctx context.Context, client *http.Client, pageSize int) (*Service, error) {
	driveService, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create Drive client: %w", err)
	}

	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &Service{files: driveService.Files, pageSize: int64(pageSize)}, nil
}

// Search returns a lazy iterator over files matching the filter. The
// filter is validated before any remote call is made.
func (s *Service) Search(filter Filter) (*SearchIterator, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	query := buildQuery(filter)
	slog.Debug("drive search", "query", query, "page_size", s.pageSize)

	return newSearchIterator(s, filter, query, s.pageSize), nil
}

// page fetches one page of search results.
func (s *Service) page(query, pageToken string, pageSize int64) (*drive.FileList, error) {
	req := s.files.List().
		Q(query).
		Spaces("drive").
		Fields(googleapi.Field(searchFields)).
		PageSize(pageSize)

	if pageToken != "" {
		req = req.PageToken(pageToken)
	}

	result, err := req.Do()
	if err != nil {
		return nil, wrapRemote("list files", err)
	}

	return result, nil
}

// Trash moves a file to the Drive trash. Reversible within the service's
// retention window.
func (s *Service) Trash(fileID string) error {
	if _, err := s.files.Update(fileID, &drive.File{Trashed: true}).Do(); err != nil {
		return wrapRemote("trash file", err)
	}

	return nil
}

// Delete permanently deletes a file, bypassing the trash.
func (s *Service) Delete(fileID string) error {
	if err := s.files.Delete(fileID).Do(); err != nil {
		return wrapRemote("delete file", err)
	}

	return nil
}

// folder fetches the minimal folder metadata the path resolver needs.
func (s *Service) folder(id string) (*folderEntry, error) {
	f, err := s.files.Get(id).Fields("id", "name", "parents").Do()
	if err != nil {
		return nil, wrapRemote("get folder", err)
	}

	return &folderEntry{ID: f.Id, Name: f.Name, Parents: f.Parents}, nil
}

// convertRecord converts a Drive API file into a FileRecord snapshot.
func convertRecord(f *drive.File) *FileRecord {
	record := &FileRecord{
		ID:       f.Id,
		Name:     f.Name,
		MimeType: f.MimeType,
		Size:     f.Size,
		Parents:  f.Parents,
	}

	for _, owner := range f.Owners {
		record.Owners = append(record.Owners, owner.DisplayName)
	}

	if f.ModifiedTime != "" {
		if t, err := time.Parse(time.RFC3339, f.ModifiedTime); err == nil {
			record.ModifiedTime = t
		}
	}

	return record
}
