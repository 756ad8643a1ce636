package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	tbl := NewTable("PACKAGE", "VERSION").
		Row("@nestjs/core", "10.4.9").
		Row("prisma", "")

	assert.Equal(t, 2, tbl.Len())

	out := tbl.String()
	assert.Contains(t, out, "PACKAGE")
	assert.Contains(t, out, "@nestjs/core")
	assert.Contains(t, out, "10.4.9")
	assert.Contains(t, out, "prisma")
}
