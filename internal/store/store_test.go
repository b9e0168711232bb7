package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestNewPage(t *testing.T) {
	assert.Equal(t, Page{Number: 1, Size: DefaultPageSize}, NewPage(0, 0))
	assert.Equal(t, Page{Number: 3, Size: MaxPageSize}, NewPage(3, 1000))
	assert.Equal(t, Page{Number: 2, Size: 10}, NewPage(2, 10))
}

func TestPageMath(t *testing.T) {
	p := NewPage(3, 10)
	assert.Equal(t, 20, p.Offset())
	assert.Equal(t, 0, p.TotalPages(0))
	assert.Equal(t, 1, p.TotalPages(10))
	assert.Equal(t, 3, p.TotalPages(21))
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate("op", nil))
	assert.ErrorIs(t, translate("op", gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, translate("op", gorm.ErrDuplicatedKey), ErrDuplicate)

	boom := errors.New("boom")
	err := translate("list scenarios", boom)
	assert.ErrorIs(t, err, boom)
	assert.EqualError(t, err, "list scenarios: boom")
}
