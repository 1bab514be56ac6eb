package adapter

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// FirestoreDoc is a fetched document: its resource path, id and field data
type FirestoreDoc struct {
	ID   string
	Path string
	Data map[string]interface{}
}

// Firestore defines the subset of the Firestore SDK used to page through a collection
//
//go:generate mockgen -source=firestore.go -destination=../mocks/firestore.go -package=mocks -mock_names=Firestore=MockFirestore
type Firestore interface {
	// ListDocuments returns up to limit documents of collection ordered by document id,
	// starting after the document id startAfter and reading only fields
	ListDocuments(ctx context.Context, collection string, fields []string, startAfter string, limit int) ([]FirestoreDoc, error)

	// Close closes the underlying gRPC connection
	Close() error
}

// RealFirestore wraps the Firestore SDK client
type RealFirestore struct {
	client *firestore.Client
}

// NewFirestore creates a Firestore client for projectID. With an empty credentialsFile the
// application default credentials are used; the SDK refreshes tokens on its own in both cases.
func NewFirestore(ctx context.Context, projectID, credentialsFile string) (Firestore, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	return &RealFirestore{client: client}, nil
}

func (f *RealFirestore) ListDocuments(ctx context.Context, collection string, fields []string, startAfter string, limit int) ([]FirestoreDoc, error) {
	query := f.client.Collection(collection).
		Select(fields...).
		OrderBy(firestore.DocumentID, firestore.Asc).
		Limit(limit)
	if startAfter != "" {
		query = query.StartAfter(startAfter)
	}

	snapshots, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	docs := make([]FirestoreDoc, 0, len(snapshots))
	for _, snap := range snapshots {
		docs = append(docs, FirestoreDoc{
			ID:   snap.Ref.ID,
			Path: snap.Ref.Path,
			Data: snap.Data(),
		})
	}

	return docs, nil
}

func (f *RealFirestore) Close() error {
	return f.client.Close()
}
