package firestore

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/swipto/swipto-api/internal/adapter"
)

const (
	usersCollection = "users"
	swipedField     = "swipedCryptos"
	defaultPageSize = 300
)

// SwipedCoin is one entry of a user's swipedCryptos array
type SwipedCoin struct {
	ID        string
	CoinID    string
	SwipeType string
	// Timestamp is ISO-8601; native Firestore timestamps are formatted as RFC 3339 in UTC
	Timestamp string
}

// Key returns the coin identifier of the entry, preferring id over coinId
func (s SwipedCoin) Key() string {
	if s.ID != "" {
		return s.ID
	}
	return s.CoinID
}

// UserSnapshot is the subset of a users document read by the season recompute
type UserSnapshot struct {
	// Name is the document path
	Name   string
	Swipes []SwipedCoin
}

// Page is one page of users documents
type Page struct {
	Users []UserSnapshot
	// NextPageToken is the id of the last document; empty on the final page
	NextPageToken string
}

// Client defines the interface for reading user swipe snapshots from Firestore
//
//go:generate mockgen -source=client.go -destination=../../../mocks/firestore_client.go -package=mocks -mock_names=Client=MockFirestoreClient
type Client interface {
	// ListUserSnapshots returns one page of the users collection
	ListUserSnapshots(ctx context.Context, pageSize int, pageToken string) (*Page, error)
	// Snapshots walks every page of the users collection and calls fn for each document
	Snapshots(ctx context.Context, fn func(UserSnapshot) error) error
}

// FirestoreClient implements Client over the Firestore SDK
type FirestoreClient struct {
	db adapter.Firestore
}

// NewClient creates a new Firestore client
func NewClient(db adapter.Firestore) Client {
	return &FirestoreClient{db: db}
}

// ListUserSnapshots returns one page of the users collection ordered by document id, reading only swipedCryptos.
// pageToken is the id of the last document of the previous page.
func (c *FirestoreClient) ListUserSnapshots(ctx context.Context, pageSize int, pageToken string) (*Page, error) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	docs, err := c.db.ListDocuments(ctx, usersCollection, []string{swipedField}, pageToken, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list users documents: %w", err)
	}

	page := &Page{Users: make([]UserSnapshot, 0, len(docs))}
	for _, doc := range docs {
		page.Users = append(page.Users, decodeUser(doc))
	}
	if len(docs) == pageSize {
		page.NextPageToken = docs[len(docs)-1].ID
	}

	return page, nil
}

// Snapshots walks every page of the users collection
func (c *FirestoreClient) Snapshots(ctx context.Context, fn func(UserSnapshot) error) error {
	pageToken := ""
	for {
		page, err := c.ListUserSnapshots(ctx, defaultPageSize, pageToken)
		if err != nil {
			return err
		}

		for _, user := range page.Users {
			if err := fn(user); err != nil {
				return err
			}
		}

		if page.NextPageToken == "" {
			return nil
		}
		pageToken = page.NextPageToken
	}
}

func decodeUser(doc adapter.FirestoreDoc) UserSnapshot {
	user := UserSnapshot{Name: doc.Path}

	items, ok := doc.Data[swipedField].([]interface{})
	if !ok {
		return user
	}

	for _, item := range items {
		fields, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		user.Swipes = append(user.Swipes, SwipedCoin{
			ID:        str(fields["id"]),
			CoinID:    str(fields["coinId"]),
			SwipeType: str(fields["swipe_type"]),
			Timestamp: str(fields["timestamp"]),
		})
	}

	return user
}

// str renders string, timestamp and integer values; anything else is empty
func str(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	case int64:
		return strconv.FormatInt(t, 10)
	}
	return ""
}
