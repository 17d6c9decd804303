package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saborcriollo/ordering/internal/domain"
)

func TestStore_EmptyByDefault(t *testing.T) {
	s := NewStore()

	assert.Equal(t, "", s.Token())
	_, ok := s.User()
	assert.False(t, ok)
}

func TestStore_SetAndClear(t *testing.T) {
	s := NewStore()
	u := domain.User{ID: 1, Name: "Maria", Email: "maria@example.com", Role: domain.RoleClient}

	s.Set("tok-abc", u)

	assert.Equal(t, "tok-abc", s.Token())
	got, ok := s.User()
	assert.True(t, ok)
	assert.Equal(t, u, got)

	s.Clear()

	assert.Equal(t, "", s.Token())
	_, ok = s.User()
	assert.False(t, ok)
}
