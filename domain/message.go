// Package domain contains the core concepts of the registry.
// This file defines the message record and its write-once rule:
// a record, once stored for an identity, is never replaced or removed.
package domain

// MessageRecord is the single message a writer registered.
// Author always equals the identity the record is stored under.
type MessageRecord struct {
	Author  Identity `cbor:"author" json:"author"`
	Content string   `cbor:"content" json:"content"`
}

func NewMessageRecord(author Identity, content string) MessageRecord {
	return MessageRecord{Author: author, Content: content}
}
