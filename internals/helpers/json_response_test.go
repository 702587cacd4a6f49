// file: internals/helpers/json_response_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 3, p.TotalPages) // ceil(45/20)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestBuildPaginationFromPage_Empty(t *testing.T) {
	p := BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages) // minimal satu halaman
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestBuildPaginationFromPage_Defaults(t *testing.T) {
	// page/perPage tidak valid dinormalisasi
	p := BuildPaginationFromPage(10, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 1, p.TotalPages)
}

func TestBuildPaginationFromPage_ExactBoundary(t *testing.T) {
	p := BuildPaginationFromPage(40, 2, 20)
	assert.Equal(t, 2, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
}
