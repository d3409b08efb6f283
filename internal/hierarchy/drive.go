package hierarchy

import (
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	folderMimeType = "application/vnd.google-apps.folder"
	listFields     = "nextPageToken, files(id, name, mimeType, webViewLink)"
)

// DefaultPageSize is the listing page size requested from Drive when the
// configuration does not override it.
const DefaultPageSize = 1000

// DriveClient implements Client against the Google Drive v3 API.
type DriveClient struct {
	svc      *drive.Service
	pageSize int64
}

// NewDriveClient builds a Drive-backed client authenticated with the given
// service-account credentials file.
func NewDriveClient(ctx context.Context, credentialsFile string, pageSize int64) (*DriveClient, error) {
	svc, err := drive.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(drive.DriveScope, drive.DriveMetadataScope),
	)
	if err != nil {
		return nil, fmt.Errorf("hierarchy: build drive service: %w", err)
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &DriveClient{svc: svc, pageSize: pageSize}, nil
}

// ListChildFolders returns the child folders of parentID.
func (d *DriveClient) ListChildFolders(ctx context.Context, parentID string) ([]Folder, error) {
	query := fmt.Sprintf("mimeType = '%s' and '%s' in parents", folderMimeType, parentID)
	var out []Folder
	err := d.list(ctx, query, func(f *drive.File) {
		out = append(out, Folder{ID: f.Id, Name: f.Name})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListChildItems returns every child of parentID, files and folders alike.
func (d *DriveClient) ListChildItems(ctx context.Context, parentID string) ([]Item, error) {
	query := fmt.Sprintf("'%s' in parents", parentID)
	var out []Item
	err := d.list(ctx, query, func(f *drive.File) {
		out = append(out, Item{
			ID:     f.Id,
			Name:   f.Name,
			Link:   f.WebViewLink,
			Folder: f.MimeType == folderMimeType,
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// list runs a files query, following page tokens until the listing is
// exhausted, and calls visit for every file returned.
func (d *DriveClient) list(ctx context.Context, query string, visit func(*drive.File)) error {
	pageToken := ""
	for {
		call := d.svc.Files.List().
			Context(ctx).
			Q(query).
			PageSize(d.pageSize).
			Fields(googleapi.Field(listFields))
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		res, err := call.Do()
		if err != nil {
			return fmt.Errorf("hierarchy: list files: %w", err)
		}
		for _, f := range res.Files {
			visit(f)
		}
		if res.NextPageToken == "" {
			return nil
		}
		pageToken = res.NextPageToken
	}
}

// Verify *DriveClient satisfies Client at compile time.
var _ Client = (*DriveClient)(nil)
