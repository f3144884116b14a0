package storage

import (
	"bytes"
	"permissioned-registry/domain"
)

// Namespace is the fixed key prefix of one of the three registry collections.
type Namespace string

const (
	ConfigNamespace   Namespace = "config"
	WritersNamespace  Namespace = "writers"
	MessagesNamespace Namespace = "messages"
)

const separator = ':'

var Namespaces = []Namespace{ConfigNamespace, WritersNamespace, MessagesNamespace}

// Prefix is the byte prefix shared by every keyed entry of the namespace.
func (n Namespace) Prefix() []byte {
	return append([]byte(n), separator)
}

// Key builds "{namespace}:{identity}". Identities never contain the
// separator, so a prefix scan of a namespace visits identities in
// ascending byte order.
func (n Namespace) Key(id domain.Identity) []byte {
	return append(n.Prefix(), string(id)...)
}

// Singleton is the key of a namespace holding a single value.
func (n Namespace) Singleton() []byte {
	return []byte(n)
}

// IdentityFromKey strips the namespace prefix from key.
func (n Namespace) IdentityFromKey(key []byte) (domain.Identity, bool) {
	prefix := n.Prefix()
	if !bytes.HasPrefix(key, prefix) {
		return "", false
	}
	return domain.Identity(key[len(prefix):]), true
}

func ParseNamespace(s string) (Namespace, bool) {
	for _, ns := range Namespaces {
		if string(ns) == s {
			return ns, true
		}
	}
	return "", false
}
