package codec

import (
	"permissioned-registry/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarshal_IsDeterministic(t *testing.T) {
	req := require.New(t)
	record := domain.NewMessageRecord("alice", "hello")

	first, err := Marshal(record)
	req.NoError(err)
	second, err := Marshal(record)
	req.NoError(err)
	req.Equal(first, second)

	var decoded domain.MessageRecord
	req.NoError(Unmarshal(first, &decoded))
	req.Equal(record, decoded)
}

func TestUnmarshal_RejectsUnknownFields(t *testing.T) {
	req := require.New(t)
	data, err := Marshal(map[string]string{"author": "alice", "content": "hi", "extra": "x"})
	req.NoError(err)

	var decoded domain.MessageRecord
	req.Error(Unmarshal(data, &decoded))
}

func TestDiagnose(t *testing.T) {
	req := require.New(t)
	data, err := Marshal(domain.Config{Owner: "owner"})
	req.NoError(err)

	diag, err := Diagnose(data)
	req.NoError(err)
	req.Equal(`{"owner": "owner"}`, diag)

	empty, err := Diagnose(nil)
	req.NoError(err)
	req.Empty(empty)
}
