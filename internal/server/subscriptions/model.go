package subscriptions

import (
	"github.com/okunev/musicbox/internal/server/images"
)

// Subscription is one row of the user_subscriptions table, keyed by
// (user_email, uuid). A fresh uuid is generated per subscription event, so
// re-subscribing to the same item creates a second, distinct row.
//
// ImgKey is the normalized storage key derived from the catalog item's
// image reference at creation time, never from user input. ImgURL is not
// persisted; it is attached at list time from a fresh presign of ImgKey.
type Subscription struct {
	UserEmail string            `dynamodbav:"user_email" json:"user_email"`
	UUID      string            `dynamodbav:"uuid" json:"uuid"`
	Title     string            `dynamodbav:"title" json:"title"`
	Year      string            `dynamodbav:"year" json:"year"`
	Album     string            `dynamodbav:"album" json:"album"`
	Artist    string            `dynamodbav:"artist" json:"artist"`
	ImgKey    images.StorageKey `dynamodbav:"img_key,omitempty" json:"img_key,omitempty"`
	ImgURL    string            `dynamodbav:"-" json:"img_url,omitempty"`
}
